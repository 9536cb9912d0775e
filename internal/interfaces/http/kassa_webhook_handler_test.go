package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kontorwerk/kassa-api/internal/application/kassa"
	"github.com/kontorwerk/kassa-api/internal/domain/entity"
	"github.com/kontorwerk/kassa-api/internal/domain/repository"
	httpapi "github.com/kontorwerk/kassa-api/internal/interfaces/http"
	"github.com/kontorwerk/kassa-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes für den Webhook-Test: echter Use-Case über In-Memory-Zustand
// ──────────────────────────────────────────────────────────────────────────────

type webhookStore struct {
	waren  map[string]*entity.Ware
	kassen map[string]*entity.Kassa
	sales  []*entity.KassaSale
	logs   []*entity.WarenLog
}

type whWareRepo struct{ s *webhookStore }

func (r whWareRepo) Create(w *entity.Ware) error { r.s.waren[w.ID] = w; return nil }
func (r whWareRepo) GetByID(id string) (*entity.Ware, error) {
	w, ok := r.s.waren[id]
	if !ok {
		return nil, nil
	}
	return w, nil
}
func (r whWareRepo) GetForUpdate(id string) (*entity.Ware, error) { return r.GetByID(id) }
func (r whWareRepo) Update(w *entity.Ware) error                  { r.s.waren[w.ID] = w; return nil }
func (r whWareRepo) UpdateBestand(id string, bestand decimal.Decimal) error {
	if w, ok := r.s.waren[id]; ok {
		w.Bestand = bestand
	}
	return nil
}
func (r whWareRepo) List(string, int, int) ([]*entity.Ware, error) { return nil, nil }
func (r whWareRepo) Delete(id string) error                        { delete(r.s.waren, id); return nil }

type whKassaRepo struct{ s *webhookStore }

func (r whKassaRepo) Create(k *entity.Kassa) error             { r.s.kassen[k.ID] = k; return nil }
func (r whKassaRepo) GetByID(id string) (*entity.Kassa, error) { return r.s.kassen[id], nil }
func (r whKassaRepo) FindByAPIKey(apiKey string) ([]*entity.Kassa, error) {
	var out []*entity.Kassa
	for _, k := range r.s.kassen {
		if k.APIKey == apiKey {
			out = append(out, k)
		}
	}
	return out, nil
}
func (r whKassaRepo) List(int, int) ([]*entity.Kassa, error) { return nil, nil }
func (r whKassaRepo) UpdateSync(id, status string, at time.Time) error {
	if k, ok := r.s.kassen[id]; ok {
		k.Status = status
		t := at
		k.LetzteSync = &t
	}
	return nil
}
func (r whKassaRepo) UpdateAPIKey(id, apiKey string) error { return nil }
func (r whKassaRepo) Delete(id string) error               { delete(r.s.kassen, id); return nil }

type whSaleRepo struct{ s *webhookStore }

func (r whSaleRepo) Create(sale *entity.KassaSale) error {
	r.s.sales = append(r.s.sales, sale)
	return nil
}
func (r whSaleRepo) GetByID(string) (*entity.KassaSale, error) { return nil, nil }
func (r whSaleRepo) GetByEventID(eventID string) (*entity.KassaSale, error) {
	for _, s := range r.s.sales {
		if s.EventID == eventID {
			return s, nil
		}
	}
	return nil, nil
}
func (r whSaleRepo) List(repository.SaleFilter, int, int) ([]*entity.KassaSale, error) {
	return r.s.sales, nil
}
func (r whSaleRepo) ListByDay(time.Time) ([]*entity.KassaSale, error) { return r.s.sales, nil }

type whLogRepo struct{ s *webhookStore }

func (r whLogRepo) Create(e *entity.WarenLog) error { r.s.logs = append(r.s.logs, e); return nil }
func (r whLogRepo) List(string, int, int) ([]*entity.WarenLog, error) { return r.s.logs, nil }

type whTxRunner struct{ s *webhookStore }

func (t whTxRunner) Run(_ context.Context, fn func(
	repository.WareRepository,
	repository.KassaSaleRepository,
	repository.KassaRepository,
	repository.WarenLogRepository,
) error) error {
	return fn(whWareRepo{t.s}, whSaleRepo{t.s}, whKassaRepo{t.s}, whLogRepo{t.s})
}

// newWebhookApp baut eine Fiber-App mit registriertem Webhook und dem
// üblichen Testbestand: eine Kassa (key "kassa_geheim"), eine Ware
// "ware-1" mit Bestand 10, Mindestbestand 3, Verkaufspreis 2.50.
func newWebhookApp() (*fiber.App, *webhookStore) {
	s := &webhookStore{
		waren:  map[string]*entity.Ware{},
		kassen: map[string]*entity.Kassa{},
	}
	s.kassen["kassa-1"] = &entity.Kassa{
		ID:          "kassa-1",
		Name:        "Hauptkassa",
		KassaNummer: "K-01",
		APIKey:      "kassa_geheim",
		Status:      entity.KassaStatusGetrennt,
	}
	s.waren["ware-1"] = &entity.Ware{
		ID:             "ware-1",
		Name:           "Müsliriegel",
		Bestand:        decimal.NewFromInt(10),
		Mindestbestand: decimal.NewFromInt(3),
		Verkaufspreis:  decimal.RequireFromString("2.50"),
		Einheit:        "Stück",
	}

	uc := kassa.NewRecordSaleUseCase(whTxRunner{s}, whKassaRepo{s})
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	handler := httpapi.NewKassaWebhookHandler(uc, log)

	app := fiber.New()
	app.All("/api/kassa/webhook", handler.Handle)
	return app, s
}

func postWebhook(t *testing.T, app *fiber.App, apiKey string, body any) (int, map[string]any) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPost, "/api/kassa/webhook", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

// ──────────────────────────────────────────────────────────────────────────────
// Protokollsequenz: Methode, Authentifizierung, Validierung
// ──────────────────────────────────────────────────────────────────────────────

func TestWebhook_GetWird405(t *testing.T) {
	app, _ := newWebhookApp()

	req := httptest.NewRequest(fiber.MethodGet, "/api/kassa/webhook", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusMethodNotAllowed, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Only POST allowed", body["error"])
}

func TestWebhook_FehlenderAPIKey(t *testing.T) {
	app, _ := newWebhookApp()

	status, body := postWebhook(t, app, "", map[string]any{
		"product_id": "ware-1", "quantity": 1,
	})

	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "API key required", body["error"])
}

func TestWebhook_UnbekannterAPIKey(t *testing.T) {
	app, s := newWebhookApp()

	// Authentifizierung kommt vor der Payload-Prüfung: auch mit gültigem
	// Payload darf kein Bestand angefasst werden.
	status, body := postWebhook(t, app, "falscher-key", map[string]any{
		"product_id": "ware-1", "quantity": 3,
	})

	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Invalid API key", body["error"])
	assert.True(t, s.waren["ware-1"].Bestand.Equal(decimal.NewFromInt(10)))
	assert.Empty(t, s.sales)
}

// Authentifizierung gewinnt gegen Payload-Fehler: unbekannter Key bekommt
// 401, auch wenn im Körper die Menge fehlt.
func TestWebhook_UnbekannterKeyMitKaputtemPayload(t *testing.T) {
	app, _ := newWebhookApp()

	status, body := postWebhook(t, app, "falscher-key", map[string]any{
		"product_id": "ware-1",
	})

	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Invalid API key", body["error"])
}

// Unlesbarer Körper mit gültigem Key: die Auth greift, dann 400.
func TestWebhook_UnlesbarerKoerper(t *testing.T) {
	app, _ := newWebhookApp()

	req := httptest.NewRequest(fiber.MethodPost, "/api/kassa/webhook", strings.NewReader("kein json"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", "kassa_geheim")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Missing required fields", body["error"])
}

func TestWebhook_FehlendeMenge(t *testing.T) {
	app, _ := newWebhookApp()

	status, body := postWebhook(t, app, "kassa_geheim", map[string]any{
		"product_id": "ware-1",
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Missing required fields", body["error"])
}

func TestWebhook_FehlendeProductID(t *testing.T) {
	app, _ := newWebhookApp()

	status, body := postWebhook(t, app, "kassa_geheim", map[string]any{
		"quantity": 2,
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Missing required fields", body["error"])
}

func TestWebhook_UnbekannteWare(t *testing.T) {
	app, _ := newWebhookApp()

	status, body := postWebhook(t, app, "kassa_geheim", map[string]any{
		"product_id": "gibt-es-nicht", "quantity": 1,
	})

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Product not found", body["error"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Erfolgsfall und Wiederholung
// ──────────────────────────────────────────────────────────────────────────────

func TestWebhook_Erfolg(t *testing.T) {
	app, s := newWebhookApp()

	status, body := postWebhook(t, app, "kassa_geheim", map[string]any{
		"product_id": "ware-1", "quantity": 4,
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Sale recorded", body["message"])
	assert.Equal(t, float64(6), body["new_quantity"], "JSON-Zahl, kein String")
	assert.Equal(t, false, body["needs_purchase"])
	assert.NotEmpty(t, body["sale_id"])

	require.Len(t, s.sales, 1)
	assert.Equal(t, body["sale_id"], s.sales[0].ID)
	assert.Equal(t, entity.KassaStatusVerbunden, s.kassen["kassa-1"].Status)
}

func TestWebhook_UeberverkaufMeldetNachbestellung(t *testing.T) {
	app, s := newWebhookApp()
	s.waren["ware-1"].Bestand = decimal.NewFromInt(2)

	status, body := postWebhook(t, app, "kassa_geheim", map[string]any{
		"product_id": "ware-1", "quantity": 5,
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(0), body["new_quantity"])
	assert.Equal(t, true, body["needs_purchase"])
}

// Zweimal dieselbe Zustellung ohne event_id: beide werden verbucht.
func TestWebhook_WiederholungOhneEventID(t *testing.T) {
	app, s := newWebhookApp()

	payload := map[string]any{"product_id": "ware-1", "quantity": 3}
	status, _ := postWebhook(t, app, "kassa_geheim", payload)
	require.Equal(t, fiber.StatusOK, status)
	status, body := postWebhook(t, app, "kassa_geheim", payload)
	require.Equal(t, fiber.StatusOK, status)

	assert.Equal(t, float64(4), body["new_quantity"])
	assert.Len(t, s.sales, 2)
}

func TestWebhook_WiederholungMitEventID(t *testing.T) {
	app, s := newWebhookApp()

	payload := map[string]any{"product_id": "ware-1", "quantity": 3, "event_id": "evt-1"}
	status, first := postWebhook(t, app, "kassa_geheim", payload)
	require.Equal(t, fiber.StatusOK, status)
	status, second := postWebhook(t, app, "kassa_geheim", payload)
	require.Equal(t, fiber.StatusOK, status)

	assert.Equal(t, first["sale_id"], second["sale_id"])
	assert.Equal(t, float64(7), second["new_quantity"])
	assert.Len(t, s.sales, 1)
}
