package rpc

import (
	"fmt"

	"github.com/MixinNetwork/ratio/storage"
)

func (impl *R) setValue(params []interface{}) (*storage.NamedValue, error) {
	if len(params) != 2 {
		return nil, fmt.Errorf("setvalue expects 2 params, got %d", len(params))
	}
	name, err := nameParam(params[0])
	if err != nil {
		return nil, err
	}
	v, err := impl.resolveOperand(params[1])
	if err != nil {
		return nil, err
	}
	err = impl.store.WriteValue(name, v)
	if err != nil {
		return nil, err
	}
	return &storage.NamedValue{Name: name, Value: v}, nil
}

func (impl *R) getValue(params []interface{}) (*storage.NamedValue, error) {
	if len(params) != 1 {
		return nil, fmt.Errorf("getvalue expects 1 param, got %d", len(params))
	}
	name, err := nameParam(params[0])
	if err != nil {
		return nil, err
	}
	v, found, err := impl.store.ReadValue(name)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("value %s not found", name)
	}
	return &storage.NamedValue{Name: name, Value: v}, nil
}

func (impl *R) removeValue(params []interface{}) (map[string]interface{}, error) {
	if len(params) != 1 {
		return nil, fmt.Errorf("removevalue expects 1 param, got %d", len(params))
	}
	name, err := nameParam(params[0])
	if err != nil {
		return nil, err
	}
	removed, err := impl.store.RemoveValue(name)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"name": name, "removed": removed}, nil
}

func nameParam(p interface{}) (string, error) {
	name, ok := p.(string)
	if !ok {
		return "", fmt.Errorf("invalid name %v", p)
	}
	return name, storage.ValidateName(name)
}
