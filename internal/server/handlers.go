package server

import (
	"context"
	"encoding/hex"
	"errors"
	"net/url"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/liekit/pkg/lies"
	"github.com/dmitrymomot/liekit/pkg/logger"
	"github.com/dmitrymomot/liekit/pkg/render"
	"github.com/dmitrymomot/liekit/pkg/reports"
)

type hashRequest struct {
	Hash string `path:"hash"`
}

type idRequest struct {
	ID string `path:"id"`
}

type probeRequest struct {
	// URL is the page to inspect. Empty means the built-in probe page.
	URL string `json:"url"`
}

// inspect runs a pass over a submitted snapshot and stores the verdict.
func (s *Server) inspect(ctx context.Context, snap lies.Snapshot) Response {
	v, err := s.evaluate(ctx, &snap)
	if err != nil {
		return JSONError(err)
	}
	return JSON(v, WithMeta(map[string]any{"stored": s.store(ctx, v)}))
}

// inspectHTML is inspect rendered as a verdict fragment.
func (s *Server) inspectHTML(ctx context.Context, snap lies.Snapshot) Response {
	v, err := s.evaluate(ctx, &snap)
	if err != nil {
		return JSONError(err)
	}
	s.store(ctx, v)
	return Templ(render.Verdict(v),
		datastar.WithSelector(Selector),
		datastar.WithMode(datastar.ElementPatchModeInner),
	)
}

func (s *Server) latest(ctx context.Context, req hashRequest) Response {
	if b, err := hex.DecodeString(req.Hash); err != nil || len(b) != 32 {
		return JSONError(ValidationError{"hash": {"must be 64 hex characters"}})
	}
	v, err := s.repo.LatestByHash(ctx, req.Hash)
	if err != nil {
		return s.lookupError(ctx, err)
	}
	return JSON(v)
}

func (s *Server) verdict(ctx context.Context, req idRequest) Response {
	v, err := s.repo.Get(ctx, req.ID)
	if err != nil {
		return s.lookupError(ctx, err)
	}
	return JSON(v)
}

func (s *Server) probe(ctx context.Context, req probeRequest) Response {
	if req.URL != "" {
		u, err := url.Parse(req.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return JSONError(ValidationError{"url": {ErrInvalidURL.Error()}})
		}
	}

	v, err := s.prober.Inspect(ctx, s.runner, req.URL)
	if err != nil {
		s.log.ErrorContext(ctx, "live probe failed", logger.Error(err))
		return JSONError(errors.Join(ErrBadGateway, err))
	}
	return JSON(v, WithMeta(map[string]any{"stored": s.store(ctx, v)}))
}

func (s *Server) evaluate(ctx context.Context, snap *lies.Snapshot) (lies.Verdict, error) {
	if err := snap.Validate(); err != nil {
		return lies.Verdict{}, invalid("snapshot", err, lies.ErrInvalidSnapshot)
	}
	return s.runner.Run(ctx, snap), nil
}

// store saves v. A failed save is logged and reported in the reply meta; the
// verdict itself is still returned.
func (s *Server) store(ctx context.Context, v lies.Verdict) bool {
	if err := s.repo.Save(ctx, v); err != nil {
		s.log.ErrorContext(ctx, "verdict not stored", logger.PassID(v.ID), logger.Error(err))
		return false
	}
	return true
}

func (s *Server) lookupError(ctx context.Context, err error) Response {
	if reports.IsNotFound(err) {
		return JSONError(ErrNotFound)
	}
	s.log.ErrorContext(ctx, "verdict lookup failed", logger.Error(err))
	return JSONError(err)
}
