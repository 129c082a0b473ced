package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mechriz/zen-fit/handlers"
	"github.com/mechriz/zen-fit/models"
	"github.com/mechriz/zen-fit/services/app"
	"github.com/mechriz/zen-fit/services/payment"
	"github.com/mechriz/zen-fit/services/therapist"
	"github.com/mechriz/zen-fit/utils"
)

var testNow = time.Date(2024, 12, 23, 9, 0, 0, 0, time.UTC)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter() (*gin.Engine, *app.AppStore, *therapist.TherapistStore) {
	payments := payment.NewProcessor()
	payments.Register(payment.MethodMpesa, payment.MpesaSimulator{})

	appStore := app.NewAppStore()
	therapistStore := therapist.NewTherapistStore(
		therapist.WithLoginDelay(0),
		therapist.WithClock(func() time.Time { return testNow }),
		therapist.WithTokenIssuer(func(t models.Therapist) (string, error) {
			return utils.GenerateToken(t.ID, t.Email, time.Hour)
		}),
	)
	clock := func() time.Time { return testNow }

	hb := &handlers.HandlerBundle{
		App: &handlers.AppHandler{
			Store:   appStore,
			Booking: &app.DefaultBookingService{Store: appStore, Payments: payments},
			Now:     clock,
		},
		Therapist: &handlers.TherapistHandler{
			Store:  therapistStore,
			Tokens: utils.NewMemoryTokenCache(),
			Now:    clock,
		},
	}

	r := gin.New()
	RegisterRoutes(r, hb, nil)
	return r, appStore, therapistStore
}

func call(t *testing.T, r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decoding %q: %v", w.Body.String(), err)
	}
}

func login(t *testing.T, r http.Handler) string {
	t.Helper()
	w := call(t, r, http.MethodPost, "/api/therapist/login", "", map[string]string{
		"email":    "sarah.johnson@zenfit.co.ke",
		"password": "password123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login status %d: %s", w.Code, w.Body.String())
	}
	var auth models.TherapistAuth
	decode(t, w, &auth)
	if !auth.IsAuthenticated || auth.Token == "" {
		t.Fatalf("unexpected auth %+v", auth)
	}
	return auth.Token
}

func TestHealth(t *testing.T) {
	r, _, _ := newTestRouter()
	if w := call(t, r, http.MethodGet, "/health", "", nil); w.Code != http.StatusOK {
		t.Fatalf("health status %d", w.Code)
	}
}

func TestOnboardingFlow(t *testing.T) {
	r, store, _ := newTestRouter()

	form := map[string]any{
		"name":              "Alex",
		"email":             "alex@example.com",
		"age":               "20",
		"weight":            "65",
		"height":            "172",
		"fitnessGoals":      []string{"Build Muscle"},
		"mentalHealthGoals": []string{"Better Sleep"},
	}
	w := call(t, r, http.MethodPost, "/api/app/onboarding", "", form)
	if w.Code != http.StatusCreated {
		t.Fatalf("onboarding status %d: %s", w.Code, w.Body.String())
	}
	if !store.IsOnboarded() || store.User() == nil || store.User().Name != "Alex" {
		t.Fatalf("store not updated")
	}

	form["age"] = "twenty"
	if w := call(t, r, http.MethodPost, "/api/app/onboarding", "", form); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad age, got %d", w.Code)
	}
}

func TestBookAndPay(t *testing.T) {
	r, store, _ := newTestRouter()

	w := call(t, r, http.MethodPost, "/api/app/book", "", app.BookingRequest{Date: "2025-01-10", Time: "10:00 AM"})
	if w.Code != http.StatusCreated {
		t.Fatalf("book status %d: %s", w.Code, w.Body.String())
	}
	var booked struct {
		Appointment models.Appointment `json:"appointment"`
	}
	decode(t, w, &booked)
	if booked.Appointment.Status != models.StatusScheduled || booked.Appointment.Price != 2000 {
		t.Fatalf("unexpected appointment %+v", booked.Appointment)
	}

	if w := call(t, r, http.MethodPost, "/api/app/book", "", app.BookingRequest{Date: "2025-01-10"}); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing time, got %d", w.Code)
	}

	pay := app.PaymentRequest{Method: payment.MethodMpesa, Phone: "+254712345678"}
	if w := call(t, r, http.MethodPost, "/api/app/appointments/"+booked.Appointment.ID+"/pay", "", pay); w.Code != http.StatusOK {
		t.Fatalf("pay status %d: %s", w.Code, w.Body.String())
	}
	if store.Appointments()[0].PaymentStatus != models.PaymentPaid {
		t.Fatalf("appointment not marked paid")
	}
	if w := call(t, r, http.MethodPost, "/api/app/appointments/"+booked.Appointment.ID+"/pay", "", pay); w.Code != http.StatusConflict {
		t.Fatalf("expected 409 on second payment, got %d", w.Code)
	}
	if w := call(t, r, http.MethodPost, "/api/app/appointments/nope/pay", "", pay); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if w := call(t, r, http.MethodPost, "/api/app/appointments/"+booked.Appointment.ID+"/pay", "", app.PaymentRequest{Method: payment.MethodCard}); w.Code != http.StatusConflict {
		t.Fatalf("expected 409 before method check on a paid appointment, got %d", w.Code)
	}
}

func TestAppStateRoundTrip(t *testing.T) {
	r, _, _ := newTestRouter()

	p := models.Progress{Workouts: models.WorkoutProgress{WeeklyGoal: 5, WeeklyProgress: 3}}
	if w := call(t, r, http.MethodPut, "/api/app/progress", "", p); w.Code != http.StatusOK {
		t.Fatalf("put progress %d", w.Code)
	}
	var dash struct {
		WeeklyPercent float64 `json:"weeklyPercent"`
	}
	decode(t, call(t, r, http.MethodGet, "/api/app/dashboard", "", nil), &dash)
	if dash.WeeklyPercent != 60 {
		t.Fatalf("weekly percent = %v", dash.WeeklyPercent)
	}

	if w := call(t, r, http.MethodPut, "/api/app/onboarded", "", map[string]bool{"isOnboarded": true}); w.Code != http.StatusOK {
		t.Fatalf("put onboarded %d", w.Code)
	}
	if w := call(t, r, http.MethodPut, "/api/app/onboarded", "", map[string]string{}); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without flag, got %d", w.Code)
	}
}

func TestCatalogEndpoints(t *testing.T) {
	r, _, _ := newTestRouter()

	var workouts struct {
		Workouts []models.WorkoutPlan `json:"workouts"`
	}
	decode(t, call(t, r, http.MethodGet, "/api/app/workouts?category=Strength", "", nil), &workouts)
	if len(workouts.Workouts) != 2 {
		t.Fatalf("expected 2 strength workouts, got %d", len(workouts.Workouts))
	}

	var therapists struct {
		Therapists []models.TherapistListing `json:"therapists"`
	}
	decode(t, call(t, r, http.MethodGet, "/api/app/therapists?specialization=Anxiety", "", nil), &therapists)
	if len(therapists.Therapists) != 2 {
		t.Fatalf("expected 2 anxiety therapists, got %d", len(therapists.Therapists))
	}

	if w := call(t, r, http.MethodGet, "/api/app/workouts/99", "", nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if w := call(t, r, http.MethodGet, "/api/app/history", "", nil); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without archive, got %d", w.Code)
	}
}

func TestTherapistLogin(t *testing.T) {
	r, _, store := newTestRouter()

	w := call(t, r, http.MethodPost, "/api/therapist/login", "", map[string]string{
		"email":    "sarah.johnson@zenfit.co.ke",
		"password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if store.Auth().IsAuthenticated {
		t.Fatalf("failed login changed auth")
	}

	token := login(t, r)
	var auth models.TherapistAuth
	decode(t, call(t, r, http.MethodGet, "/api/therapist/auth", token, nil), &auth)
	if auth.Therapist == nil || auth.Therapist.Name != "Dr. Sarah Johnson" {
		t.Fatalf("unexpected auth %+v", auth)
	}

	if w := call(t, r, http.MethodPost, "/api/therapist/logout", token, nil); w.Code != http.StatusOK {
		t.Fatalf("logout status %d", w.Code)
	}
	if w := call(t, r, http.MethodGet, "/api/therapist/auth", token, nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("token still accepted after logout: %d", w.Code)
	}
}

func TestPortalRequiresToken(t *testing.T) {
	r, _, _ := newTestRouter()
	if w := call(t, r, http.MethodGet, "/api/therapist/clients", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestPortalClients(t *testing.T) {
	r, _, _ := newTestRouter()
	token := login(t, r)

	var clients struct {
		Clients []models.Client `json:"clients"`
	}
	decode(t, call(t, r, http.MethodGet, "/api/therapist/clients?q=maya", token, nil), &clients)
	if len(clients.Clients) != 1 || clients.Clients[0].ID != "3" {
		t.Fatalf("unexpected clients %+v", clients.Clients)
	}

	// testNow is 2024-12-23: Alex (12-20) and Sam (12-18) are within a week.
	decode(t, call(t, r, http.MethodGet, "/api/therapist/clients?filter=recent", token, nil), &clients)
	if len(clients.Clients) != 2 {
		t.Fatalf("expected 2 recent clients, got %d", len(clients.Clients))
	}

	if w := call(t, r, http.MethodGet, "/api/therapist/clients?filter=vip", token, nil); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown filter, got %d", w.Code)
	}

	var detail struct {
		Client models.Client        `json:"client"`
		Notes  []models.SessionNote `json:"notes"`
	}
	decode(t, call(t, r, http.MethodGet, "/api/therapist/clients/1", token, nil), &detail)
	if detail.Client.Name != "Alex Johnson" || len(detail.Notes) != 1 {
		t.Fatalf("unexpected detail %+v", detail)
	}
	if w := call(t, r, http.MethodGet, "/api/therapist/clients/42", token, nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestPortalAppointmentsAndNotes(t *testing.T) {
	r, _, store := newTestRouter()
	token := login(t, r)

	var dash struct {
		Schedule []models.Appointment `json:"schedule"`
		Stats    struct {
			TodaySessions int `json:"todaySessions"`
		} `json:"stats"`
	}
	decode(t, call(t, r, http.MethodGet, "/api/therapist/dashboard", token, nil), &dash)
	if dash.Stats.TodaySessions != 2 || len(dash.Schedule) != 2 {
		t.Fatalf("unexpected dashboard %+v", dash)
	}

	if w := call(t, r, http.MethodPatch, "/api/therapist/appointments/1/status", token, map[string]string{"status": "completed"}); w.Code != http.StatusOK {
		t.Fatalf("status update %d: %s", w.Code, w.Body.String())
	}
	if w := call(t, r, http.MethodPatch, "/api/therapist/appointments/1/status", token, map[string]string{"status": "cancelled"}); w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for final state, got %d", w.Code)
	}

	note := models.SessionNote{AppointmentID: "1", ClientID: "1", Content: "Reviewed breathing homework"}
	if w := call(t, r, http.MethodPost, "/api/therapist/notes", token, note); w.Code != http.StatusCreated {
		t.Fatalf("add note %d: %s", w.Code, w.Body.String())
	}
	if n := len(store.SessionNotes()); n != 2 {
		t.Fatalf("expected 2 notes, got %d", n)
	}

	var integrity struct {
		Consistent bool `json:"consistent"`
	}
	decode(t, call(t, r, http.MethodGet, "/api/therapist/integrity", token, nil), &integrity)
	if !integrity.Consistent {
		t.Fatalf("fixtures should be consistent")
	}
}
