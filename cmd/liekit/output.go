package main

import (
	"context"
	"encoding/json"
	"io"

	"github.com/dmitrymomot/liekit/pkg/lies"
	"github.com/dmitrymomot/liekit/pkg/render"
)

func writeVerdict(ctx context.Context, w io.Writer, v lies.Verdict, html bool) error {
	if html {
		s, err := render.String(ctx, render.Verdict(v))
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, s+"\n")
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
