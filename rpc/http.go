package rpc

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/MixinNetwork/ratio/config"
	"github.com/MixinNetwork/ratio/logger"
	"github.com/MixinNetwork/ratio/storage"
	"github.com/dimfeld/httptreemux"
	"github.com/gorilla/handlers"
	"github.com/unrolled/render"
)

type R struct {
	custom    *config.Custom
	store     storage.Store
	cache     *resultCache
	startedAt time.Time
}

type Call struct {
	Method string        `json:"method"`
	Params []interface{} `json:"params"`
}

func NewRouter(custom *config.Custom, store storage.Store) *httptreemux.TreeMux {
	impl := &R{
		custom:    custom,
		store:     store,
		cache:     newResultCache(custom.Node.MemoryCacheSize),
		startedAt: time.Now(),
	}
	router := httptreemux.New()
	router.POST("/", impl.handle)
	registerHandlers(router)
	return router
}

func NewHandler(custom *config.Custom, store storage.Store) http.Handler {
	router := NewRouter(custom, store)
	handler := handleCORS(router)
	handler = handlers.ProxyHeaders(handler)
	return handlers.CompressHandler(handler)
}

func NewServer(custom *config.Custom, store storage.Store, port int) *http.Server {
	handler := NewHandler(custom, store)
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}

func registerHandlers(router *httptreemux.TreeMux) {
	router.MethodNotAllowedHandler = func(w http.ResponseWriter, r *http.Request, _ map[string]httptreemux.HandlerFunc) {
		render.New().JSON(w, http.StatusNotFound, map[string]interface{}{})
	}
	router.NotFoundHandler = func(w http.ResponseWriter, r *http.Request) {
		render.New().JSON(w, http.StatusNotFound, map[string]interface{}{})
	}
	router.PanicHandler = func(w http.ResponseWriter, r *http.Request, rcv interface{}) {
		logger.Errorf("RPC PANIC %v\n%s\n", rcv, debug.Stack())
		render.New().JSON(w, http.StatusInternalServerError, map[string]interface{}{"error": fmt.Sprint(rcv)})
	}
}

func (impl *R) handle(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var call Call
	d := json.NewDecoder(io.LimitReader(r.Body, config.RequestMaximumSize))
	d.UseNumber()
	if err := d.Decode(&call); err != nil {
		render.New().JSON(w, http.StatusBadRequest, map[string]interface{}{"error": err.Error()})
		return
	}
	logger.Debugf("RPC %s %v\n", call.Method, call.Params)

	data, err := impl.dispatch(call)
	if err != nil {
		logger.Verbosef("RPC %s %v ERROR %s\n", call.Method, call.Params, err.Error())
		render.New().JSON(w, http.StatusOK, map[string]interface{}{"error": err.Error()})
		return
	}
	render.New().JSON(w, http.StatusOK, map[string]interface{}{"data": data})
}

func (impl *R) dispatch(call Call) (interface{}, error) {
	switch call.Method {
	case "getinfo":
		return impl.getInfo()
	case "setvalue":
		return impl.setValue(call.Params)
	case "getvalue":
		return impl.getValue(call.Params)
	case "removevalue":
		return impl.removeValue(call.Params)
	case "listvalues":
		return impl.store.ListValues()
	}
	if _, ok := computeArity[call.Method]; ok {
		return impl.compute(call.Method, call.Params)
	}
	return nil, fmt.Errorf("invalid method %s", call.Method)
}

func handleCORS(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			handler.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Add("Access-Control-Allow-Headers", "Content-Type,Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "OPTIONS,GET,POST")
		w.Header().Set("Access-Control-Max-Age", "600")
		if r.Method == "OPTIONS" {
			render.New().JSON(w, http.StatusOK, map[string]interface{}{})
		} else {
			handler.ServeHTTP(w, r)
		}
	})
}
