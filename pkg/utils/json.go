package utils

import (
	"bytes"
	stdjson "encoding/json"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJSON serializa com indentação de dois espaços e chaves de mapa ordenadas.
// O jsoniter não indenta valores aninhados dentro de mapas ordenados, então a saída
// compacta é reindentada.
func PrettyJSON(in any) ([]byte, error) {
	if raw, ok := in.([]byte); ok {
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return nil, err
		}
		in = decoded
	}

	compact, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := stdjson.Indent(&out, compact, "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')

	return out.Bytes(), nil
}
