// Copyright (c) 2025 Tracectl
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package params decodes loosely-structured user input into the nested
// parameter map the trace server protocol expects. Two source forms are
// supported: an inline "key=value;key=value" string and a parameter document
// on disk (JSON, optionally with comments, or YAML). Both forms produce the
// same map shape, so builders downstream never care which one was used.
package params

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"tracectl/cli/internal/errs"
)

// Decode turns exactly one of the two sources into a parameter map.
// raw is the inline "key=value;..." form, file a path to a JSON/YAML
// document. Supplying neither or both is an error; a malformed pair or an
// unusable document fails the whole decode with no partial result.
func Decode(raw, file string) (map[string]any, error) {
	switch {
	case raw == "" && file == "":
		return nil, errs.New(errs.MissingArgument, "no parameters supplied (use --params or --file)")
	case raw != "" && file != "":
		return nil, errs.New(errs.MalformedParameter, "--params and --file are mutually exclusive")
	case raw != "":
		return decodeString(raw)
	default:
		return decodeFile(file)
	}
}

// decodeString splits the inline form on ';' into pairs, each on the first '='.
func decodeString(raw string) (map[string]any, error) {
	out := map[string]any{}
	for _, pair := range strings.Split(raw, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, errs.New(errs.MalformedParameter, "parameter "+pair+" is not of form key=value")
		}
		out[strings.TrimSpace(key)] = value
	}
	if len(out) == 0 {
		return nil, errs.New(errs.MalformedParameter, "params string holds no key=value pairs")
	}
	return out, nil
}

// decodeFile parses a parameter document. The extension selects the syntax;
// anything that is not YAML is treated as JSON with comment and trailing
// comma tolerance.
func decodeFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(errs.MalformedParameter, "reading parameter file "+path, err)
	}

	var out map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &out)
	default:
		err = json.Unmarshal(jsonc.ToJSON(data), &out)
	}
	if err != nil {
		return nil, errs.Wrap(errs.MalformedParameter, "parsing parameter file "+path, err)
	}
	if len(out) == 0 {
		return nil, errs.New(errs.MalformedParameter, "parameter file "+path+" holds no parameters")
	}
	return out, nil
}
