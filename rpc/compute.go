package rpc

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/MixinNetwork/ratio/common"
)

const decimalPlacesMaximum = 1024

var computeArity = map[string]int{
	"parse":   1,
	"format":  1,
	"neg":     1,
	"add":     2,
	"sub":     2,
	"mul":     2,
	"div":     2,
	"compare": 2,
	"equals":  2,
	"inrange": 3,
	"decimal": 1,
}

func (impl *R) compute(method string, params []interface{}) (interface{}, error) {
	n := computeArity[method]
	places := int32(0)
	if method == "decimal" {
		if len(params) != 2 {
			return nil, fmt.Errorf("%s expects 2 params, got %d", method, len(params))
		}
		p, err := parsePlaces(params[1])
		if err != nil {
			return nil, err
		}
		places = p
	} else if len(params) != n {
		return nil, fmt.Errorf("%s expects %d params, got %d", method, n, len(params))
	}

	operands := make([]common.Rational, n)
	args := make([]string, 0, n+1)
	for i := 0; i < n; i++ {
		r, err := impl.resolveOperand(params[i])
		if err != nil {
			return nil, err
		}
		operands[i] = r
		args = append(args, r.String())
	}
	args = append(args, strconv.Itoa(int(places)))

	key := cacheKey(method, args...)
	if b, ok := impl.cache.get(key); ok {
		return json.RawMessage(b), nil
	}
	data, err := evaluate(method, operands, places)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	impl.cache.set(key, b)
	return json.RawMessage(b), nil
}

func evaluate(method string, ops []common.Rational, places int32) (interface{}, error) {
	switch method {
	case "parse":
		return map[string]interface{}{
			"value":       ops[0],
			"numerator":   ops[0].Num().String(),
			"denominator": ops[0].Den().String(),
		}, nil
	case "format":
		return ops[0].String(), nil
	case "neg":
		return ops[0].Neg(), nil
	case "add":
		return ops[0].Add(ops[1]), nil
	case "sub":
		return ops[0].Sub(ops[1]), nil
	case "mul":
		return ops[0].Mul(ops[1]), nil
	case "div":
		return ops[0].Div(ops[1])
	case "compare":
		return ops[0].Cmp(ops[1]), nil
	case "equals":
		return ops[0].Equal(ops[1]), nil
	case "inrange":
		return ops[0].Within(ops[1], ops[2]), nil
	case "decimal":
		return ops[0].FloatString(places), nil
	}
	return nil, fmt.Errorf("invalid method %s", method)
}

// resolveOperand accepts a literal, or "$name" for a stored value.
func (impl *R) resolveOperand(p interface{}) (common.Rational, error) {
	var text string
	switch v := p.(type) {
	case string:
		text = v
	case json.Number:
		text = v.String()
	default:
		return common.Zero, fmt.Errorf("invalid operand %v", p)
	}
	if !strings.HasPrefix(text, "$") {
		return common.Parse(text)
	}
	name := text[1:]
	v, found, err := impl.store.ReadValue(name)
	if err != nil {
		return common.Zero, err
	}
	if !found {
		return common.Zero, fmt.Errorf("value %s not found", name)
	}
	return v, nil
}

func parsePlaces(p interface{}) (int32, error) {
	var s string
	switch v := p.(type) {
	case string:
		s = v
	case json.Number:
		s = v.String()
	default:
		return 0, fmt.Errorf("invalid decimal places %v", p)
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > decimalPlacesMaximum {
		return 0, fmt.Errorf("invalid decimal places %s", s)
	}
	return int32(n), nil
}
