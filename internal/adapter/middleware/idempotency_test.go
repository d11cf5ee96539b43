package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

func newMiniredisClient(t *testing.T) *redis.Client {
	t.Helper()
	s := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: s.Addr()})
}

// setupIdemEcho wires the middleware around a counting handler.
func setupIdemEcho(rdb *redis.Client, calls *atomic.Int64) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(Idempotency(rdb, time.Minute))
	handler := func(c echo.Context) error {
		calls.Add(1)
		return c.JSON(http.StatusCreated, echo.Map{"success": true, "n": calls.Load()})
	}
	e.POST("/payments", handler)
	e.GET("/payments", handler)
	return e
}

func doIdemReq(t *testing.T, e *echo.Echo, method string, body any, key string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, "/payments", rd)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if key != "" {
		req.Header.Set(HeaderIdempotencyKey, key)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

const idemKey = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

func TestIdempotency_PassThroughWithoutHeader(t *testing.T) {
	var calls atomic.Int64
	e := setupIdemEcho(newMiniredisClient(t), &calls)

	// No header: every retry hits the handler again (the documented
	// non-idempotent baseline).
	body := map[string]any{"loan_id": "x", "amount": 100}
	for i := 0; i < 2; i++ {
		if rec := doIdemReq(t, e, http.MethodPost, body, ""); rec.Code != http.StatusCreated {
			t.Fatalf("request %d: status = %d", i, rec.Code)
		}
	}
	if calls.Load() != 2 {
		t.Fatalf("handler ran %d times, want 2", calls.Load())
	}
}

func TestIdempotency_ReplaysStoredResponse(t *testing.T) {
	var calls atomic.Int64
	e := setupIdemEcho(newMiniredisClient(t), &calls)

	body := map[string]any{"loan_id": "x", "amount": 100}
	first := doIdemReq(t, e, http.MethodPost, body, idemKey)
	if first.Code != http.StatusCreated {
		t.Fatalf("first: status = %d", first.Code)
	}
	second := doIdemReq(t, e, http.MethodPost, body, idemKey)
	if second.Code != http.StatusCreated {
		t.Fatalf("replay: status = %d", second.Code)
	}
	if calls.Load() != 1 {
		t.Fatalf("handler ran %d times, want 1", calls.Load())
	}
	if first.Body.String() != second.Body.String() {
		t.Fatalf("replayed body differs: %q vs %q", first.Body.String(), second.Body.String())
	}
}

func TestIdempotency_KeyReuseWithDifferentBody(t *testing.T) {
	var calls atomic.Int64
	e := setupIdemEcho(newMiniredisClient(t), &calls)

	if rec := doIdemReq(t, e, http.MethodPost, map[string]any{"amount": 100}, idemKey); rec.Code != http.StatusCreated {
		t.Fatalf("first: status = %d", rec.Code)
	}
	rec := doIdemReq(t, e, http.MethodPost, map[string]any{"amount": 999}, idemKey)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "different body") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestIdempotency_InvalidKeyFormat(t *testing.T) {
	var calls atomic.Int64
	e := setupIdemEcho(newMiniredisClient(t), &calls)

	rec := doIdemReq(t, e, http.MethodPost, map[string]any{"amount": 100}, "not hex")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if calls.Load() != 0 {
		t.Fatalf("handler ran despite invalid key")
	}
}

func TestIdempotency_IgnoresReads(t *testing.T) {
	var calls atomic.Int64
	e := setupIdemEcho(newMiniredisClient(t), &calls)

	for i := 0; i < 2; i++ {
		if rec := doIdemReq(t, e, http.MethodGet, nil, idemKey); rec.Code != http.StatusCreated {
			t.Fatalf("GET %d: status = %d", i, rec.Code)
		}
	}
	if calls.Load() != 2 {
		t.Fatalf("handler ran %d times, want 2", calls.Load())
	}
}
