package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-config-manager/internal/fragment"
)

var errNotMapping = errors.New("top-level value must be a mapping")

// decodeJSON keeps integers as integers by decoding numbers as json.Number.
func decodeJSON(data []byte) (fragment.Fragment, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileParse, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after top-level value", ErrFileParse)
	}

	return toFragment(raw)
}

// decodeYAML treats an empty document as an empty mapping.
func decodeYAML(data []byte) (fragment.Fragment, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileParse, err)
	}
	if raw == nil {
		return fragment.Fragment{}, nil
	}

	return toFragment(raw)
}

func toFragment(raw any) (fragment.Fragment, error) {
	v, err := fragment.FromAny(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileParse, err)
	}

	cfg, ok := v.AsMapping()
	if !ok {
		return nil, fmt.Errorf("%w: %w, got %s", ErrFileParse, errNotMapping, v.Kind())
	}

	return cfg, nil
}
