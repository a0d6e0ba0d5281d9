package client

import (
	"bytes"
	"encoding/json"
	"reflect"

	"github.com/bytedance/sonic"

	"backlot/pkg/core"
)

// codec sorts map keys, so the same body always serializes to the same signed bytes.
var codec = sonic.ConfigStd

// EncodeBody serializes a request payload.
//
// Empty payloads (nil, a nil pointer, or an empty map, slice, array or string)
// become "" rather than "null" or "{}". A string, []byte or json.RawMessage is
// taken as already-serialized JSON and sent unchanged. Anything else is
// marshaled to JSON.
func EncodeBody(body any) (string, error) {
	switch b := body.(type) {
	case nil:
		return "", nil
	case string:
		return b, nil
	case []byte:
		return string(b), nil
	case json.RawMessage:
		return string(b), nil
	}

	v := reflect.ValueOf(body)
	switch v.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		if v.Len() == 0 {
			return "", nil
		}
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return "", nil
		}
	}

	data, err := codec.Marshal(body)
	if err != nil {
		e := core.NewError(core.ErrorTypeValidation, "encode request body").WithCode(core.ErrCodeEncodeBody)
		e.Err = err
		return "", e
	}
	return string(data), nil
}

// decode unmarshals a successful response body into out. An empty body leaves
// out untouched.
func decode(body []byte, out any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := codec.Unmarshal(body, out); err != nil {
		return core.NewDecodeError(err)
	}
	return nil
}
