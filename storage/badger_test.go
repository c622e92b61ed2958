package storage

import (
	"errors"
	"os"
	"testing"

	"github.com/MixinNetwork/ratio/common"
	"github.com/MixinNetwork/ratio/config"
	"github.com/dgraph-io/badger/v3"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *BadgerStore {
	require := require.New(t)
	custom, err := config.Initialize("../config/config.example.toml")
	require.Nil(err)

	root, err := os.MkdirTemp("", "ratio-badger-test")
	require.Nil(err)
	t.Cleanup(func() { os.RemoveAll(root) })

	store, err := NewBadgerStore(custom, root)
	require.Nil(err)
	require.NotNil(store)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestBadger(t *testing.T) {
	require := require.New(t)
	store := testStore(t)

	_, found, err := store.ReadValue("half")
	require.Nil(err)
	require.False(found)

	err = store.WriteValue("half", common.NewRatio(2, 4))
	require.Nil(err)
	err = store.WriteValue("big", common.MustParse("912016490186296920119201192141970416029/-3"))
	require.Nil(err)
	err = store.WriteValue("neg.third", common.NewRatio(-1, 3))
	require.Nil(err)

	v, found, err := store.ReadValue("half")
	require.Nil(err)
	require.True(found)
	require.Equal("1/2", v.String())

	err = store.WriteValue("half", common.NewInteger(7))
	require.Nil(err)
	v, _, err = store.ReadValue("half")
	require.Nil(err)
	require.Equal("7", v.String())

	values, err := store.ListValues()
	require.Nil(err)
	require.Len(values, 3)
	require.Equal("big", values[0].Name)
	require.Equal("-912016490186296920119201192141970416029/3", values[0].Value.String())
	require.Equal("half", values[1].Name)
	require.Equal("neg.third", values[2].Name)
	require.Equal("-1/3", values[2].Value.String())

	removed, err := store.RemoveValue("half")
	require.Nil(err)
	require.True(removed)
	removed, err = store.RemoveValue("half")
	require.Nil(err)
	require.False(removed)

	err = store.WriteValue("bad name", common.One)
	require.True(errors.Is(err, ErrInvalidName))
	_, _, err = store.ReadValue("")
	require.True(errors.Is(err, ErrInvalidName))

	err = store.valueDB.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte("key-not-found"))
	})
	require.Nil(err)

	err = store.Close()
	require.Nil(err)
	err = store.Close()
	require.Nil(err)
}

func TestBadgerDump(t *testing.T) {
	require := require.New(t)
	source := testStore(t)
	target := testStore(t)

	err := source.WriteValue("a", common.NewRatio(1, 2))
	require.Nil(err)
	err = source.WriteValue("b", common.NewRatio(-13, 122))
	require.Nil(err)
	err = target.WriteValue("a", common.NewInteger(9))
	require.Nil(err)
	err = target.WriteValue("c", common.NewInteger(3))
	require.Nil(err)

	dump, err := source.DumpValues()
	require.Nil(err)
	require.Equal(common.CompressionVersionLatest, dump[:4])

	n, err := target.LoadValues(dump)
	require.Nil(err)
	require.Equal(2, n)

	values, err := target.ListValues()
	require.Nil(err)
	require.Len(values, 3)
	require.Equal("1/2", values[0].Value.String())
	require.Equal("-13/122", values[1].Value.String())
	require.Equal("3", values[2].Value.String())

	bad := common.CompressMsgpackMarshalPanic([]*NamedValue{{Name: "ok", Value: common.One}, {Name: "no/slash", Value: common.One}})
	_, err = target.LoadValues(bad)
	require.True(errors.Is(err, ErrInvalidName))
	_, found, err := target.ReadValue("ok")
	require.Nil(err)
	require.False(found)

	_, err = target.LoadValues([]byte{0, 0, 0, 0, 1, 2, 3})
	require.NotNil(err)
}

func TestValidateName(t *testing.T) {
	require := require.New(t)

	for _, name := range []string{"x", "half", "neg.third", "A_1-b"} {
		require.Nil(ValidateName(name))
	}
	for _, name := range []string{"", "a b", "$x", "a/b", "é", string(make([]byte, 65))} {
		require.NotNil(ValidateName(name), name)
	}
}
