package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/pet-shelter/internal/audit"
	"github.com/BruksfildServices01/pet-shelter/internal/config"
	"github.com/BruksfildServices01/pet-shelter/internal/db/dbtest"
	domain "github.com/BruksfildServices01/pet-shelter/internal/domain/appointment"
	infraRepo "github.com/BruksfildServices01/pet-shelter/internal/infra/repository"
	"github.com/BruksfildServices01/pet-shelter/internal/models"
	"github.com/BruksfildServices01/pet-shelter/internal/session"
	"github.com/BruksfildServices01/pet-shelter/internal/storage"
	ucUser "github.com/BruksfildServices01/pet-shelter/internal/usecase/user"
)

var shelterTZ = time.FixedZone("UTC+08:00", 8*3600)

type testApp struct {
	srv *httptest.Server
	db  *gorm.DB
	cfg *config.Config
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := dbtest.Open(t)
	for _, p := range []models.Pet{
		{ID: 7, Name: "Rex", Type: "Dog", Breed: "Labrador", Age: 3},
		{ID: 8, Name: "Tom", Type: "Cat", Breed: "Siamese", Age: 2},
	} {
		p := p
		if err := db.Create(&p).Error; err != nil {
			t.Fatalf("seed pet: %v", err)
		}
	}

	cfg := &config.Config{
		Env:                "test",
		DBQueryTimeout:     5 * time.Second,
		SessionSecret:      "test-secret",
		SessionTTL:         time.Hour,
		BookingSlots:       domain.DefaultSlots,
		BookingWindowStart: "2025-07-29",
		BookingWindowEnd:   "2025-08-31",
		BookingUTCOffset:   "+08:00",
		UploadURLPrefix:    "/images/animals",
		UploadMaxBytes:     5 * 1024 * 1024,
		ImageMaxWidth:      1200,
		ImageQuality:       80,
	}

	store, err := storage.NewLocal(t.TempDir(), cfg.UploadURLPrefix)
	if err != nil {
		t.Fatalf("local storage: %v", err)
	}

	dispatcher := audit.NewDispatcher(audit.New(db), nil)
	t.Cleanup(dispatcher.Close)

	seeder := ucUser.NewAuth(infraRepo.NewUserGormRepository(db, cfg.DBQueryTimeout), nil, nil)
	if _, err := seeder.SeedAdmin(context.Background(), "Admin", "admin@shelter.test", "adminpass"); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	r := gin.New()
	if err := RegisterRoutes(r, Deps{
		DB:       db,
		Config:   cfg,
		Sessions: session.NewMemoryStore(),
		Storage:  store,
		Audit:    dispatcher,
		Now: func() time.Time {
			return time.Date(2025, 8, 1, 10, 0, 0, 0, shelterTZ)
		},
	}); err != nil {
		t.Fatalf("RegisterRoutes: %v", err)
	}

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return &testApp{srv: srv, db: db, cfg: cfg}
}

// --------------------------------------------------
// Browser helper
// --------------------------------------------------

type browser struct {
	t    *testing.T
	base string
	http *http.Client
}

type page struct {
	status   int
	location string
	body     string
	cookies  []*http.Cookie
}

func (a *testApp) browser(t *testing.T) *browser {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	return &browser{
		t:    t,
		base: a.srv.URL,
		http: &http.Client{
			Jar: jar,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (b *browser) do(req *http.Request) page {
	b.t.Helper()
	resp, err := b.http.Do(req)
	if err != nil {
		b.t.Fatalf("%s %s: %v", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	return page{
		status:   resp.StatusCode,
		location: resp.Header.Get("Location"),
		body:     string(body),
		cookies:  resp.Cookies(),
	}
}

func (b *browser) get(path string) page {
	b.t.Helper()
	req, _ := http.NewRequest(http.MethodGet, b.base+path, nil)
	return b.do(req)
}

func (b *browser) post(path string, form url.Values) page {
	b.t.Helper()
	req, _ := http.NewRequest(http.MethodPost, b.base+path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return b.do(req)
}

func (b *browser) postRaw(path, contentType, body string) page {
	b.t.Helper()
	req, _ := http.NewRequest(http.MethodPost, b.base+path, strings.NewReader(body))
	req.Header.Set("Content-Type", contentType)
	return b.do(req)
}

func (b *browser) register(name, email string) {
	b.t.Helper()
	p := b.post("/register", url.Values{"name": {name}, "email": {email}, "password": {"secret1"}})
	if p.status != http.StatusFound || p.location != "/login" {
		b.t.Fatalf("register %s: %d %q %s", email, p.status, p.location, p.body)
	}
}

func (b *browser) login(email, password string) page {
	b.t.Helper()
	return b.post("/login", url.Values{"email": {email}, "password": {password}})
}

func (b *browser) slots(date string, petID string) []string {
	b.t.Helper()
	p := b.get("/availableSlots?date=" + date + "&petId=" + petID)
	if p.status != http.StatusOK {
		b.t.Fatalf("availableSlots: %d %s", p.status, p.body)
	}
	var out []string
	if err := json.Unmarshal([]byte(p.body), &out); err != nil {
		b.t.Fatalf("decode slots %q: %v", p.body, err)
	}
	return out
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// ======================================================
// Booking flow
// ======================================================

func TestBookingFlow(t *testing.T) {
	app := newTestApp(t)

	ann := app.browser(t)
	ann.register("Ann", "ann@example.com")
	if p := ann.login("ann@example.com", "secret1"); p.status != http.StatusFound || p.location != "/" {
		t.Fatalf("login: %d %q", p.status, p.location)
	}

	if got := ann.slots("2025-08-05", "7"); len(got) != 13 {
		t.Fatalf("expected 13 free slots, got %v", got)
	}

	p := ann.post("/appointments/schedule/7", url.Values{
		"date":  {"2025-08-05"},
		"time":  {"10:00:00"},
		"notes": {"first visit"},
	})
	if p.status != http.StatusFound || p.location != "/profile" {
		t.Fatalf("book: %d %q", p.status, p.location)
	}

	free := ann.slots("2025-08-05", "7")
	if len(free) != 12 || contains(free, "10:00:00") {
		t.Fatalf("expected 10:00:00 removed, got %v", free)
	}

	profile := ann.get("/profile")
	if profile.status != http.StatusOK {
		t.Fatalf("profile: %d", profile.status)
	}
	for _, want := range []string{"Appointment booked!", "Rex", "2025-08-05 10:00:00", "first visit"} {
		if !strings.Contains(profile.body, want) {
			t.Fatalf("profile missing %q", want)
		}
	}

	// A second adopter loses the race for the same slot.
	bob := app.browser(t)
	bob.register("Bob", "bob@example.com")
	bob.login("bob@example.com", "secret1")

	p = bob.post("/appointments/schedule/7", url.Values{"date": {"2025-08-05"}, "time": {"10:00:00"}})
	if p.status != http.StatusFound || p.location != "/appointments/schedule/7" {
		t.Fatalf("conflicting booking: %d %q", p.status, p.location)
	}
	if back := bob.get(p.location); !strings.Contains(back.body, "This time slot is already taken.") {
		t.Fatalf("conflict flash not shown")
	}

	// The same time is free for a different pet.
	p = bob.post("/appointments/schedule/8", url.Values{"appointment_dt": {"2025-08-05 10:00:00"}})
	if p.status != http.StatusFound || p.location != "/profile" {
		t.Fatalf("other pet booking: %d %q", p.status, p.location)
	}

	// Bob cannot cancel Ann's appointment.
	var annAppt models.Appointment
	if err := app.db.Where("pet_id = ?", 7).First(&annAppt).Error; err != nil {
		t.Fatalf("load appointment: %v", err)
	}
	cancelPath := "/appointments/cancel/" + itoa(annAppt.ID)

	bob.post(cancelPath, nil)
	if back := bob.get("/profile"); !strings.Contains(back.body, "Unauthorized or appointment not found.") {
		t.Fatalf("foreign cancel was not refused")
	}

	ann.post(cancelPath, nil)
	if got := ann.slots("2025-08-05", "7"); len(got) != 13 {
		t.Fatalf("cancel should free the slot, got %v", got)
	}
}

func TestBookingOutsideWindow(t *testing.T) {
	app := newTestApp(t)

	ann := app.browser(t)
	ann.register("Ann", "ann@example.com")
	ann.login("ann@example.com", "secret1")

	p := ann.post("/appointments/schedule/7", url.Values{"date": {"2025-09-15"}, "time": {"10:00:00"}})
	if p.status != http.StatusFound || p.location != "/appointments/schedule/7" {
		t.Fatalf("out of window: %d %q", p.status, p.location)
	}
	if back := ann.get(p.location); !strings.Contains(back.body, "Date outside booking window.") {
		t.Fatalf("window flash not shown")
	}

	var count int64
	app.db.Model(&models.Appointment{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no appointments, got %d", count)
	}
}

func TestAvailableSlotsEdgeCases(t *testing.T) {
	app := newTestApp(t)

	anon := app.browser(t)
	if p := anon.get("/availableSlots?date=2025-08-05&petId=7"); p.status != http.StatusFound || p.location != "/login" {
		t.Fatalf("anonymous slots: %d %q", p.status, p.location)
	}

	ann := app.browser(t)
	ann.register("Ann", "ann@example.com")
	ann.login("ann@example.com", "secret1")

	for _, q := range []string{"", "?date=2025-08-05", "?petId=7", "?date=05/08/2025&petId=7", "?date=2025-08-05&petId=abc"} {
		p := ann.get("/availableSlots" + q)
		if p.status != http.StatusOK || strings.TrimSpace(p.body) != "[]" {
			t.Fatalf("availableSlots%s = %d %q, want []", q, p.status, p.body)
		}
	}
}

// ======================================================
// Catalog + cookies
// ======================================================

func TestRecentlyViewedCookie(t *testing.T) {
	app := newTestApp(t)
	visitor := app.browser(t)

	p := visitor.get("/pets/8")
	if p.status != http.StatusOK || !strings.Contains(p.body, "Siamese") {
		t.Fatalf("pet page: %d", p.status)
	}

	var viewed *http.Cookie
	for _, c := range p.cookies {
		if c.Name == "recentlyViewed" {
			viewed = c
		}
	}
	if viewed == nil {
		t.Fatalf("recentlyViewed cookie not set")
	}
	if viewed.MaxAge != 7*24*3600 {
		t.Fatalf("recentlyViewed MaxAge = %d", viewed.MaxAge)
	}

	home := visitor.get("/")
	if !strings.Contains(home.body, "Recently viewed") || !strings.Contains(home.body, "Tom") {
		t.Fatalf("home page does not list recently viewed pet")
	}

	if p := visitor.get("/pets/999"); p.status != http.StatusFound || p.location != "/pets" {
		t.Fatalf("missing pet: %d %q", p.status, p.location)
	}
}

func TestPetListFilters(t *testing.T) {
	app := newTestApp(t)
	visitor := app.browser(t)

	p := visitor.get("/pets?type=cat")
	if p.status != http.StatusOK {
		t.Fatalf("pets: %d", p.status)
	}
	if !strings.Contains(p.body, "Tom") || strings.Contains(p.body, "Rex") {
		t.Fatalf("type filter not applied")
	}

	p = visitor.get("/pets?search=re")
	if !strings.Contains(p.body, "Rex") || strings.Contains(p.body, "Tom") {
		t.Fatalf("search filter not applied")
	}
}

// ======================================================
// Auth + guards
// ======================================================

func TestLoginRememberMeAndFailures(t *testing.T) {
	app := newTestApp(t)
	ann := app.browser(t)
	ann.register("Ann", "ann@example.com")

	p := ann.login("ann@example.com", "wrong")
	if p.status != http.StatusUnauthorized || !strings.Contains(p.body, "Invalid credentials.") {
		t.Fatalf("bad login: %d", p.status)
	}

	p = ann.post("/login", url.Values{
		"email":      {"ann@example.com"},
		"password":   {"secret1"},
		"rememberMe": {"on"},
	})
	if p.status != http.StatusFound {
		t.Fatalf("login: %d", p.status)
	}
	var remembered bool
	for _, c := range p.cookies {
		if c.Name == "rememberedEmail" && c.MaxAge == 30*24*3600 {
			remembered = true
		}
	}
	if !remembered {
		t.Fatalf("rememberedEmail cookie not set for 30 days")
	}

	ann.get("/logout")
	if lp := ann.get("/login"); !strings.Contains(lp.body, `value="ann@example.com"`) {
		t.Fatalf("login page does not prefill remembered email")
	}
	if p := ann.get("/profile"); p.status != http.StatusFound || p.location != "/login" {
		t.Fatalf("profile after logout: %d %q", p.status, p.location)
	}
}

func TestDuplicateRegistration(t *testing.T) {
	app := newTestApp(t)
	b := app.browser(t)
	b.register("Ann", "ann@example.com")

	p := b.post("/register", url.Values{"name": {"Ann"}, "email": {"ANN@example.com"}, "password": {"secret1"}})
	if p.status != http.StatusConflict || !strings.Contains(p.body, "Email already in use.") {
		t.Fatalf("duplicate register: %d", p.status)
	}

	p = b.post("/register", url.Values{"name": {"Al"}, "email": {"al@example.com"}, "password": {"123"}})
	if p.status != http.StatusBadRequest || !strings.Contains(p.body, "at least 6 characters") {
		t.Fatalf("short password: %d", p.status)
	}
}

func TestRoleGuards(t *testing.T) {
	app := newTestApp(t)

	anon := app.browser(t)
	for _, path := range []string{"/dashboard", "/admin/pets", "/profile", "/appointments/schedule/7"} {
		if p := anon.get(path); p.status != http.StatusFound || p.location != "/login" {
			t.Fatalf("anonymous %s: %d %q", path, p.status, p.location)
		}
	}

	user := app.browser(t)
	user.register("Ann", "ann@example.com")
	user.login("ann@example.com", "secret1")
	if p := user.get("/admin/users"); p.status != http.StatusFound || p.location != "/login" {
		t.Fatalf("user on admin page: %d %q", p.status, p.location)
	}

	admin := app.browser(t)
	if p := admin.login("admin@shelter.test", "adminpass"); p.status != http.StatusFound || p.location != "/dashboard" {
		t.Fatalf("admin login: %d %q", p.status, p.location)
	}
	if p := admin.get("/profile"); p.status != http.StatusFound || p.location != "/dashboard" {
		t.Fatalf("admin on profile: %d %q", p.status, p.location)
	}
	dash := admin.get("/dashboard")
	if dash.status != http.StatusOK || !strings.Contains(dash.body, "<strong>2</strong> pets") {
		t.Fatalf("dashboard: %d", dash.status)
	}
	if p := admin.get("/admin/audit-logs"); p.status != http.StatusOK {
		t.Fatalf("audit logs: %d", p.status)
	}
}

// ======================================================
// Admin back-office
// ======================================================

func TestAdminAddPetWithPhoto(t *testing.T) {
	app := newTestApp(t)
	admin := app.browser(t)
	admin.login("admin@shelter.test", "adminpass")

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range map[string]string{"name": "Polly", "type": "Others", "breed": "Parrot", "age": "4"} {
		_ = mw.WriteField(k, v)
	}
	fw, _ := mw.CreateFormFile("photoFile", "polly.png")
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	img.Set(1, 1, color.RGBA{R: 200, A: 255})
	_ = png.Encode(fw, img)
	_ = mw.Close()

	req, _ := http.NewRequest(http.MethodPost, admin.base+"/admin/pets/add", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	p := admin.do(req)
	if p.status != http.StatusFound || p.location != "/admin/pets" {
		t.Fatalf("add pet: %d %q %s", p.status, p.location, p.body)
	}

	var polly models.Pet
	if err := app.db.Where("name = ?", "Polly").First(&polly).Error; err != nil {
		t.Fatalf("pet not stored: %v", err)
	}
	if !strings.HasPrefix(polly.ImageURL(), "/images/animals/") || !strings.HasSuffix(polly.ImageURL(), ".webp") {
		t.Fatalf("image url = %q", polly.ImageURL())
	}
	if img := admin.get(polly.ImageURL()); img.status != http.StatusOK {
		t.Fatalf("stored image not served: %d", img.status)
	}
}

func TestAdminPetValidationRerendersForm(t *testing.T) {
	app := newTestApp(t)
	admin := app.browser(t)
	admin.login("admin@shelter.test", "adminpass")

	p := admin.post("/admin/pets/add", url.Values{"name": {"Nemo"}, "type": {"Fish"}, "breed": {"Clown"}, "age": {"1"}})
	if p.status != http.StatusBadRequest || !strings.Contains(p.body, "Invalid input. Please check all fields.") {
		t.Fatalf("invalid pet: %d", p.status)
	}
	if !strings.Contains(p.body, `value="Nemo"`) {
		t.Fatalf("form values not kept")
	}
}

func TestAdminAppointmentStatusAndUserDelete(t *testing.T) {
	app := newTestApp(t)

	ann := app.browser(t)
	ann.register("Ann", "ann@example.com")
	ann.login("ann@example.com", "secret1")
	ann.post("/appointments/schedule/7", url.Values{"date": {"2025-08-05"}, "time": {"09:15:00"}})

	var ap models.Appointment
	if err := app.db.First(&ap).Error; err != nil {
		t.Fatalf("appointment not created: %v", err)
	}
	id := itoa(ap.ID)

	admin := app.browser(t)
	admin.login("admin@shelter.test", "adminpass")

	admin.post("/admin/appointments/status/"+id, url.Values{"status": {"bogus"}})
	if list := admin.get("/admin/appointments"); !strings.Contains(list.body, "Invalid status.") {
		t.Fatalf("invalid status not reported")
	}

	admin.post("/admin/users/delete/"+itoa(ap.UserID), nil)
	if list := admin.get("/admin/users"); !strings.Contains(list.body, "Cannot delete user with existing appointments.") {
		t.Fatalf("user delete with active appointment was not refused")
	}

	admin.post("/admin/appointments/status/"+id, url.Values{"status": {"cancelled"}})
	if list := admin.get("/admin/appointments"); !strings.Contains(list.body, "Appointment cancelled successfully!") {
		t.Fatalf("status change not confirmed")
	}

	admin.post("/admin/users/delete/"+itoa(ap.UserID), nil)
	var users int64
	app.db.Model(&models.User{}).Count(&users)
	if users != 0 {
		t.Fatalf("user not deleted, %d remain", users)
	}
}

func TestAdminEditAppointmentConflict(t *testing.T) {
	app := newTestApp(t)

	ann := app.browser(t)
	ann.register("Ann", "ann@example.com")
	ann.login("ann@example.com", "secret1")
	ann.post("/appointments/schedule/7", url.Values{"date": {"2025-08-05"}, "time": {"09:15:00"}})
	ann.post("/appointments/schedule/7", url.Values{"date": {"2025-08-05"}, "time": {"10:00:00"}})

	var first models.Appointment
	if err := app.db.Order("appointment_dt").First(&first).Error; err != nil {
		t.Fatalf("load: %v", err)
	}

	admin := app.browser(t)
	admin.login("admin@shelter.test", "adminpass")

	if p := admin.get("/admin/appointments/edit/" + itoa(first.ID)); !strings.Contains(p.body, "2025-08-05 09:15:00") {
		t.Fatalf("edit page does not show local time")
	}

	p := admin.post("/admin/appointments/edit/"+itoa(first.ID), url.Values{
		"user_id":        {itoa(first.UserID)},
		"pet_id":         {"7"},
		"appointment_dt": {"2025-08-05 10:00:00"},
		"status":         {"scheduled"},
	})
	if p.status != http.StatusConflict || !strings.Contains(p.body, "This time slot is already taken.") {
		t.Fatalf("edit conflict: %d", p.status)
	}

	p = admin.post("/admin/appointments/edit/"+itoa(first.ID), url.Values{
		"user_id":        {itoa(first.UserID)},
		"pet_id":         {"8"},
		"appointment_dt": {"2025-08-05 10:00:00"},
		"status":         {"scheduled"},
	})
	if p.status != http.StatusFound || p.location != "/admin/appointments" {
		t.Fatalf("edit to other pet: %d %q", p.status, p.location)
	}
}

func TestBookingRequiresSeparateDateAndTime(t *testing.T) {
	app := newTestApp(t)

	ann := app.browser(t)
	ann.register("Ann", "ann@example.com")
	ann.login("ann@example.com", "secret1")

	p := ann.post("/appointments/schedule/7", url.Values{"appointment_dt": {"2025-08-05 10:00:00"}})
	if p.status != http.StatusFound || p.location != "/appointments/schedule/7" {
		t.Fatalf("combined field: %d %q", p.status, p.location)
	}
	if back := ann.get(p.location); !strings.Contains(back.body, "Select a date and time.") {
		t.Fatalf("missing date/time flash not shown")
	}

	var count int64
	app.db.Model(&models.Appointment{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no appointments, got %d", count)
	}
}

func TestMalformedFormsAreRejected(t *testing.T) {
	const message = "The form could not be read. Please try again."
	app := newTestApp(t)

	anon := app.browser(t)
	p := anon.postRaw("/login", "application/x-www-form-urlencoded", "email=%zz&password=x")
	if p.status != http.StatusBadRequest || !strings.Contains(p.body, message) {
		t.Fatalf("malformed login: %d", p.status)
	}

	ann := app.browser(t)
	ann.register("Ann", "ann@example.com")
	ann.login("ann@example.com", "secret1")

	p = ann.postRaw("/appointments/schedule/7", "application/x-www-form-urlencoded", "date=%zz")
	if p.status != http.StatusFound || p.location != "/appointments/schedule/7" {
		t.Fatalf("malformed booking: %d %q", p.status, p.location)
	}
	if back := ann.get(p.location); !strings.Contains(back.body, message) {
		t.Fatalf("malformed booking flash not shown")
	}

	admin := app.browser(t)
	admin.login("admin@shelter.test", "adminpass")

	p = admin.postRaw("/admin/pets/add", "multipart/form-data", "name=Polly")
	if p.status != http.StatusBadRequest || !strings.Contains(p.body, message) {
		t.Fatalf("multipart without boundary: %d", p.status)
	}

	var pets int64
	app.db.Model(&models.Pet{}).Count(&pets)
	if pets != 2 {
		t.Fatalf("expected the two seeded pets, got %d", pets)
	}
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)
	p := app.browser(t).get("/health")
	if p.status != http.StatusOK || !strings.Contains(p.body, `"status":"ok"`) {
		t.Fatalf("health: %d %s", p.status, p.body)
	}
}

func TestStaticAndHealthSetNoSessionCookie(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/health", "/static/site.css"} {
		p := app.browser(t).get(path)
		if p.status != http.StatusOK {
			t.Fatalf("%s: %d", path, p.status)
		}
		for _, ck := range p.cookies {
			if ck.Name == session.CookieName {
				t.Fatalf("%s set a %s cookie", path, session.CookieName)
			}
		}
	}

	p := app.browser(t).get("/")
	found := false
	for _, ck := range p.cookies {
		if ck.Name == session.CookieName {
			found = true
		}
	}
	if !found {
		t.Fatalf("home page should start a session")
	}
}

func itoa(n uint) string {
	return strconv.FormatUint(uint64(n), 10)
}
