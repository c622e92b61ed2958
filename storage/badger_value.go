package storage

import (
	"github.com/MixinNetwork/ratio/common"
	"github.com/MixinNetwork/ratio/logger"
	"github.com/dgraph-io/badger/v3"
)

const valuePrefix = "VALUE"

func (s *BadgerStore) ReadValue(name string) (common.Rational, bool, error) {
	if err := ValidateName(name); err != nil {
		return common.Zero, false, err
	}
	txn := s.valueDB.NewTransaction(false)
	defer txn.Discard()

	item, err := txn.Get(valueKey(name))
	if err == badger.ErrKeyNotFound {
		return common.Zero, false, nil
	}
	if err != nil {
		return common.Zero, false, err
	}
	ival, err := item.ValueCopy(nil)
	if err != nil {
		return common.Zero, false, err
	}
	var v common.Rational
	err = common.MsgpackUnmarshal(ival, &v)
	if err != nil {
		return common.Zero, true, err
	}
	return v, true, nil
}

func (s *BadgerStore) WriteValue(name string, value common.Rational) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	logger.Debugf("WriteValue(%s, %s)\n", name, value)
	return s.valueDB.Update(func(txn *badger.Txn) error {
		return txn.Set(valueKey(name), common.MsgpackMarshalPanic(value))
	})
}

func (s *BadgerStore) RemoveValue(name string) (bool, error) {
	if err := ValidateName(name); err != nil {
		return false, err
	}
	var found bool
	err := s.valueDB.Update(func(txn *badger.Txn) error {
		key := valueKey(name)
		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return txn.Delete(key)
	})
	return found, err
}

// ListValues returns every stored value ordered by name.
func (s *BadgerStore) ListValues() ([]*NamedValue, error) {
	txn := s.valueDB.NewTransaction(false)
	defer txn.Discard()

	it := txn.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()

	values := make([]*NamedValue, 0)
	prefix := []byte(valuePrefix)
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		item := it.Item()
		ival, err := item.ValueCopy(nil)
		if err != nil {
			return nil, err
		}
		nv := &NamedValue{Name: string(item.Key()[len(prefix):])}
		err = common.MsgpackUnmarshal(ival, &nv.Value)
		if err != nil {
			return nil, err
		}
		values = append(values, nv)
	}
	return values, nil
}

// DumpValues serializes all values into a zstd compressed msgpack list.
func (s *BadgerStore) DumpValues() ([]byte, error) {
	values, err := s.ListValues()
	if err != nil {
		return nil, err
	}
	return common.CompressMsgpackMarshalPanic(values), nil
}

// LoadValues writes every value of a dump, overwriting existing names, and
// returns how many were written. Nothing is written if any name is invalid.
func (s *BadgerStore) LoadValues(data []byte) (int, error) {
	var values []*NamedValue
	err := common.DecompressMsgpackUnmarshal(data, &values)
	if err != nil {
		return 0, err
	}
	for _, nv := range values {
		if err := ValidateName(nv.Name); err != nil {
			return 0, err
		}
	}

	wb := s.valueDB.NewWriteBatch()
	defer wb.Cancel()
	for _, nv := range values {
		err := wb.Set(valueKey(nv.Name), common.MsgpackMarshalPanic(nv.Value))
		if err != nil {
			return 0, err
		}
	}
	err = wb.Flush()
	if err != nil {
		return 0, err
	}
	return len(values), nil
}

func valueKey(name string) []byte {
	return append([]byte(valuePrefix), name...)
}
