package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/algo-sparam/sparam"
	"github.com/cwbudde/algo-sparam/units"
)

var errNoPlots = errors.New("request contains no plots")

// request is the CLI input document.
type request struct {
	Plots []sparam.Series `json:"plots"`
}

// readRequest decodes a request from path, or from stdin when path is "-".
// Unit tags are accepted in any letter case.
func (a *app) readRequest(path string) (*request, error) {
	var r io.Reader = a.stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var req request
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return nil, fmt.Errorf("decode request %s: %w", path, err)
	}
	if len(req.Plots) == 0 {
		return nil, fmt.Errorf("%s: %w", path, errNoPlots)
	}
	for i := range req.Plots {
		u, err := units.Parse(string(req.Plots[i].Unit))
		if err != nil {
			return nil, fmt.Errorf("plot %d: %w", i, err)
		}
		req.Plots[i].Unit = u
	}

	a.log.Debug("loaded request", "source", path, "series", len(req.Plots))
	return &req, nil
}

// maxFreqHz returns the highest frequency across all series, in Hz.
func (req *request) maxFreqHz() float64 {
	maxHz := 0.0
	for _, s := range req.Plots {
		f, err := s.Unit.Scale()
		if err != nil {
			continue
		}
		for _, v := range s.Freq {
			if v*f > maxHz {
				maxHz = v * f
			}
		}
	}
	return maxHz
}

// writeOutput writes data to path, or to stdout when path is empty or "-".
func (a *app) writeOutput(path string, write func(io.Writer) error) error {
	if path == "" || path == "-" {
		return write(a.stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	a.log.Debug("wrote output", "path", path)
	return nil
}

func writeJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
