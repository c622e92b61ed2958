package rpc

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/MixinNetwork/ratio/config"
	"github.com/MixinNetwork/ratio/storage"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T) *httptest.Server {
	require := require.New(t)
	custom, err := config.Initialize("../config/config.example.toml")
	require.Nil(err)

	root, err := os.MkdirTemp("", "ratio-rpc-test")
	require.Nil(err)
	t.Cleanup(func() { os.RemoveAll(root) })

	store, err := storage.NewBadgerStore(custom, root)
	require.Nil(err)
	t.Cleanup(func() { store.Close() })

	server := httptest.NewServer(NewHandler(custom, store))
	t.Cleanup(server.Close)
	return server
}

func call(t *testing.T, node, method string, params ...interface{}) string {
	data, err := CallRPC(node, method, params)
	require.Nil(t, err, method)
	return string(data)
}

func callError(t *testing.T, node, method string, params ...interface{}) error {
	_, err := CallRPC(node, method, params)
	require.NotNil(t, err, method)
	return err
}

func TestCompute(t *testing.T) {
	require := require.New(t)
	node := testServer(t).URL

	require.Equal(`"5/6"`, call(t, node, "add", "1/2", "1/3"))
	require.Equal(`"1/6"`, call(t, node, "sub", "1/2", "1/3"))
	require.Equal(`"1/6"`, call(t, node, "mul", "1/2", "1/3"))
	require.Equal(`"3/2"`, call(t, node, "div", "1/2", "1/3"))
	require.Equal(`"-1/2"`, call(t, node, "neg", "1/2"))
	require.Equal(`"-13/122"`, call(t, node, "format", "117/-1098"))
	require.Equal(`"2"`, call(t, node, "format", json.Number("2")))
	require.Equal(`-1`, call(t, node, "compare", "1/2", "2/3"))
	require.Equal(`0`, call(t, node, "compare", "2/4", "1/2"))
	require.Equal(`true`, call(t, node, "equals", "2/4", "-1/-2"))
	require.Equal(`true`, call(t, node, "inrange", "1/2", "1/3", "2/3"))
	require.Equal(`false`, call(t, node, "inrange", "1", "1/3", "2/3"))
	require.Equal(`"0.333"`, call(t, node, "decimal", "1/3", 3))
	require.Equal(`{"denominator":"122","numerator":"-13","value":"-13/122"}`, call(t, node, "parse", "117/-1098"))
	require.Equal(`"1/2"`, call(t, node, "div",
		"912016490186296920119201192141970416029",
		"1824032980372593840238402384283940832058"))

	// served from the result cache the second time
	require.Equal(`"5/6"`, call(t, node, "add", "2/4", "1/3"))

	require.Contains(callError(t, node, "div", "1/2", "0").Error(), "division by zero")
	require.Contains(callError(t, node, "parse", "5/0").Error(), "denominator is zero")
	require.Contains(callError(t, node, "parse", "1.5").Error(), "invalid literal")
	require.Contains(callError(t, node, "add", "1/2").Error(), "expects 2 params")
	require.Contains(callError(t, node, "add", "1/2", true).Error(), "invalid operand")
	require.Contains(callError(t, node, "decimal", "1/3", -1).Error(), "invalid decimal places")
	require.Contains(callError(t, node, "sqrt", "4").Error(), "invalid method")
}

func TestValues(t *testing.T) {
	require := require.New(t)
	node := testServer(t).URL

	require.Equal(`[]`, call(t, node, "listvalues"))
	require.Equal(`{"name":"half","value":"1/2"}`, call(t, node, "setvalue", "half", "2/4"))
	require.Equal(`{"name":"third","value":"1/3"}`, call(t, node, "setvalue", "third", "1/3"))
	require.Equal(`"5/6"`, call(t, node, "add", "$half", "$third"))
	require.Equal(`{"name":"sum","value":"1/2"}`, call(t, node, "setvalue", "sum", "$half"))
	require.Equal(`{"name":"half","value":"1/2"}`, call(t, node, "getvalue", "half"))
	require.Equal(`[{"name":"half","value":"1/2"},{"name":"sum","value":"1/2"},{"name":"third","value":"1/3"}]`, call(t, node, "listvalues"))

	require.Equal(`{"name":"sum","removed":true}`, call(t, node, "removevalue", "sum"))
	require.Equal(`{"name":"sum","removed":false}`, call(t, node, "removevalue", "sum"))
	require.Contains(callError(t, node, "getvalue", "sum").Error(), "not found")
	require.Contains(callError(t, node, "add", "$sum", "1").Error(), "not found")
	require.Contains(callError(t, node, "setvalue", "a b", "1").Error(), "invalid value name")
	require.Contains(callError(t, node, "setvalue", "x", "1/0").Error(), "denominator is zero")

	var info map[string]interface{}
	err := json.Unmarshal([]byte(call(t, node, "getinfo")), &info)
	require.Nil(err)
	require.Equal(config.BuildVersion, info["version"])
	require.Equal(float64(2), info["values"])
	require.NotNil(info["runtime"])
}

func TestHTTP(t *testing.T) {
	require := require.New(t)
	node := testServer(t).URL

	resp, err := http.Post(node, "application/json", bytes.NewReader([]byte("{")))
	require.Nil(err)
	resp.Body.Close()
	require.Equal(http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Get(node + "/missing")
	require.Nil(err)
	resp.Body.Close()
	require.Equal(http.StatusNotFound, resp.StatusCode)

	req, err := http.NewRequest("OPTIONS", node, nil)
	require.Nil(err)
	req.Header.Set("Origin", "https://example.com")
	resp, err = http.DefaultClient.Do(req)
	require.Nil(err)
	resp.Body.Close()
	require.Equal(http.StatusOK, resp.StatusCode)
	require.Equal("https://example.com", resp.Header.Get("Access-Control-Allow-Origin"))
}
