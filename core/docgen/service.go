// Package docgen runs document requests through validation, layout and
// sheet composition on behalf of the API and the admin CLI.
package docgen

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/Santosh-B-Vitana/smsv2-sub002/core"
	"github.com/Santosh-B-Vitana/smsv2-sub002/core/batch"
	"github.com/Santosh-B-Vitana/smsv2-sub002/core/document"
	"github.com/Santosh-B-Vitana/smsv2-sub002/core/layout"
)

var ErrNoRequests = errors.New("no document requests")

type (
	ServiceInterface interface {
		School() document.SchoolInfo
		Prepare(req document.Request) document.Request
		Fields(dt document.DocumentType, board document.Board) ([]document.FieldSpec, error)
		Validate(req document.Request, meta core.RequestMeta) error
		Layout(req document.Request, meta core.RequestMeta) (layout.Page, error)
		ComposeSheets(reqs []document.Request, meta core.RequestMeta) ([]batch.CardSheet, error)
	}

	Options struct {
		School       document.SchoolInfo
		DefaultBoard document.Board
		Cards        batch.CardConfig
	}

	Service struct {
		opts   Options
		logger core.Logger
		layout batch.LayoutFunc
	}
)

var _ ServiceInterface = (*Service)(nil)

func NewService(opts Options, logger core.Logger) *Service {
	if opts.Cards.Capacity() == 0 {
		opts.Cards = batch.DefaultCardConfig()
	}
	return &Service{opts: opts, logger: logger, layout: layout.Layout}
}

// NewOptions builds the service options from the application config and the
// school profile it points to.
func NewOptions(conf *core.Config) (Options, error) {
	school, err := document.LoadSchoolInfo(core.ProjectPath(conf.SchoolFile))
	if err != nil {
		return Options{}, errors.Wrap(err, "loading school profile")
	}
	cards := batch.DefaultCardConfig()
	cards.GapX, cards.GapY = conf.Cards.GapX, conf.Cards.GapY
	cards.CutMarks = conf.Cards.CutMarks
	return Options{
		School:       school,
		DefaultBoard: document.Board(strings.ToUpper(conf.DefaultBoard)),
		Cards:        cards,
	}, nil
}

func (svc *Service) School() document.SchoolInfo {
	return svc.opts.School
}

// Prepare fills what the caller may omit: the letterhead and the board. The
// board is upper cased so "cbse" is accepted.
func (svc *Service) Prepare(req document.Request) document.Request {
	req = req.WithSchool(svc.opts.School)
	if req.Board == "" {
		req.Board = svc.opts.DefaultBoard
	}
	req.Board = document.Board(strings.ToUpper(strings.TrimSpace(string(req.Board))))
	return req
}

func (svc *Service) Fields(dt document.DocumentType, board document.Board) ([]document.FieldSpec, error) {
	if board == "" {
		board = svc.opts.DefaultBoard
	}
	return document.MandatoryFieldsFor(dt, document.Board(strings.ToUpper(string(board))))
}

func (svc *Service) Validate(req document.Request, meta core.RequestMeta) error {
	req = svc.Prepare(req)
	if err := document.Validate(req); err != nil {
		svc.logger.Debug(fmt.Sprintf("%s rejected", req.DocumentType), err, withRequest(meta, req))
		return err
	}
	return nil
}

func (svc *Service) Layout(req document.Request, meta core.RequestMeta) (layout.Page, error) {
	req = svc.Prepare(req)
	page, err := svc.layout(req)
	if err != nil {
		svc.logger.Debug(fmt.Sprintf("%s not laid out", req.DocumentType), err, withRequest(meta, req))
		return layout.Page{}, err
	}
	svc.logger.Info(fmt.Sprintf("%s %s laid out: %d commands", req.DocumentType, page.Reference, len(page.Commands)),
		withRequest(meta, req))
	return page, nil
}

func (svc *Service) ComposeSheets(reqs []document.Request, meta core.RequestMeta) ([]batch.CardSheet, error) {
	if len(reqs) == 0 {
		return nil, ErrNoRequests
	}
	prepared := make([]document.Request, len(reqs))
	for i, req := range reqs {
		prepared[i] = svc.Prepare(req)
	}

	sheets, err := batch.ComposeSheets(prepared, svc.opts.Cards, svc.layout)
	if err != nil {
		svc.logger.Debug("cards not composed", err, meta)
		return nil, err
	}
	svc.logger.Info(fmt.Sprintf("%d cards composed on %d sheets", len(reqs), len(sheets)), meta)
	return sheets, nil
}

func withRequest(meta core.RequestMeta, req document.Request) core.RequestMeta {
	meta.DocumentType = string(req.DocumentType)
	meta.Board = string(req.Board)
	return meta
}
