package tests

import (
	"net/http"
	"os"
	"testing"

	"github.com/go-playground/validator/v10"

	. "github.com/Santosh-B-Vitana/smsv2-sub002/apps/api/echo"
	"github.com/Santosh-B-Vitana/smsv2-sub002/core"
	"github.com/Santosh-B-Vitana/smsv2-sub002/core/batch"
	"github.com/Santosh-B-Vitana/smsv2-sub002/core/docgen"
	"github.com/Santosh-B-Vitana/smsv2-sub002/core/document"
	"github.com/Santosh-B-Vitana/smsv2-sub002/tests"
)

var (
	app    *Server
	logger *testutil.Logger

	errNotFound = httpErr{Error: "not found"}
)

func TestMain(m *testing.M) {
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	document.InitValidators(validate, translator)

	// set up services
	logger = new(testutil.Logger)
	docSvc := docgen.NewService(docgen.Options{
		School:       testutil.School(),
		DefaultBoard: document.CBSE,
		Cards:        batch.DefaultCardConfig(),
	}, logger)

	// set up server
	app = NewServer(ServerDeps{
		Conf:       &core.Config{AppName: "Vidyalaya Documents", TestMode: true},
		Logger:     logger,
		DocSvc:     docSvc,
		Validate:   validate,
		Translator: translator,
	})

	os.Exit(m.Run())
}

func TestHome(t *testing.T) {
	req, rec := newRequest(http.MethodGet, "/")
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %v; want 200", rec.Code)
	}
	if got, want := rec.Body.String(), "Welcome to Vidyalaya Documents API!"; got != want {
		t.Errorf("body = %q; want %q", got, want)
	}
}

func TestUnknownRoute(t *testing.T) {
	runTests(t, []httpTest{
		{name: "unknown path", path: "/v1/diplomas", wantCode: http.StatusNotFound},
		{name: "unknown version", path: "/v2/grades/cbse", wantCode: http.StatusNotFound},
	})
}

func TestJSONBodyRequired(t *testing.T) {
	req, rec := newRequest(http.MethodPost, "/v1/grades/cgpa", []byte("points=9,8"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnsupportedMediaType {
		t.Errorf("code = %v; want 415", rec.Code)
	}

	req, rec = newRequest(http.MethodPost, "/v1/grades/cgpa", []byte(`{"points": [8]}`))
	req.Header.Set("Content-Type", "application/json; charset=UTF-8")
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("code = %v; want 200", rec.Code)
	}
}
