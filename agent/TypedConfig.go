package agent

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// TypedConfig implements functionality for typing a Config. In this
// way, a Config can explicitly have its type stored so that when
// deserializing the Config, we can deserialize it into its concrete
// type without knowing beforehand or declaring beforehand a variable
// of its concrete type.
type TypedConfig struct {
	Type
	Config
}

// NewTypedConfig types the argument Config and returns it as a
// TypedConfig which explicitly holds its Type.
func NewTypedConfig(c Config) TypedConfig {
	return TypedConfig{Type: c.Type(), Config: c}
}

// UnmarshalJSON implements the json.Unmarshaller interface
func (t *TypedConfig) UnmarshalJSON(data []byte) error {
	config, typeName, err := unmarshalConfig(data, "Type", "Config")
	if err != nil {
		return err
	}

	t.Type = typeName
	t.Config = config

	return nil
}

// unmarshalConfig uses reflection to unmarshall a Config into its
// concrete type, starting from the registered default Config of that
// type. Both the Config and its Type are returned.
func unmarshalConfig(data []byte, typeJsonField,
	valueJsonField string) (Config, Type, error) {
	m := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, "", fmt.Errorf("unmarshalConfig: %v", err)
	}

	var typeName Type
	if err := json.Unmarshal(m[typeJsonField], &typeName); err != nil {
		return nil, "", fmt.Errorf("unmarshalConfig: could not read "+
			"type: %v", err)
	}

	defaultConfig, found := registeredTypes[typeName]
	if !found {
		return nil, "", fmt.Errorf("unmarshalConfig: no such agent type "+
			"%q registered", typeName)
	}

	// Decode over a copy of the default so missing fields keep their
	// default values
	value := reflect.New(reflect.TypeOf(defaultConfig))
	value.Elem().Set(reflect.ValueOf(defaultConfig))
	if raw, ok := m[valueJsonField]; ok {
		if err := json.Unmarshal(raw, value.Interface()); err != nil {
			return nil, "", fmt.Errorf("unmarshalConfig: %v", err)
		}
	}
	concreteValue := value.Elem().Interface().(Config)

	return concreteValue, typeName, nil
}
