package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// LoadSchoolInfo reads the school profile from a YAML, JSON or TOML file.
// The profile may sit at the top level or under a "school" key.
func LoadSchoolInfo(path string) (SchoolInfo, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return SchoolInfo{}, errors.Wrapf(err, "reading school profile %s", path)
	}
	if sub := v.Sub("school"); sub != nil {
		v = sub
	}

	var info SchoolInfo
	if err := v.Unmarshal(&info); err != nil {
		return SchoolInfo{}, errors.Wrapf(err, "decoding school profile %s", path)
	}
	return info, nil
}

// DecodeRequests reads one request or a list of requests written as YAML or
// JSON. Dates use the YYYY-MM-DD form.
func DecodeRequests(r io.Reader) ([]Request, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading requests")
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("no requests")
	}

	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "parsing requests")
	}
	doc = jsonable(doc)
	if _, single := doc.(map[string]interface{}); single {
		doc = []interface{}{doc}
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "converting requests")
	}
	var reqs []Request
	if err := json.Unmarshal(raw, &reqs); err != nil {
		return nil, errors.Wrap(err, "decoding requests")
	}
	return reqs, nil
}

// jsonable turns yaml's map[interface{}]interface{} nodes into string keyed maps.
func jsonable(v interface{}) interface{} {
	switch node := v.(type) {
	case map[string]interface{}:
		for k, child := range node {
			node[k] = jsonable(child)
		}
		return node
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(node))
		for k, child := range node {
			out[fmt.Sprint(k)] = jsonable(child)
		}
		return out
	case []interface{}:
		for i, child := range node {
			node[i] = jsonable(child)
		}
		return node
	default:
		return v
	}
}
