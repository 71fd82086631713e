//go:build e2e
// +build e2e

package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultBaseURL = "http://localhost:5000/api/v1"
	defaultMongo   = "mongodb://localhost:27017"
	defaultDB      = "college_info"
	adminUser      = "admin"
	adminPass      = "admin@colleges"
)

var (
	baseURL   string
	collegeID string
)

func TestMain(m *testing.M) {
	// Load .env if present (ignore error)
	_ = godotenv.Load("../../.env")

	baseURL = os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	if err := cleanDatabase(); err != nil {
		fmt.Printf("Setup failed: %v\n", err)
		os.Exit(1)
	}

	os.Exit(m.Run())
}

func cleanDatabase() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = defaultMongo
	}
	dbName := os.Getenv("MONGODB_DATABASE")
	if dbName == "" {
		dbName = defaultDB
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return fmt.Errorf("mongo connect: %w", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(dbName)
	for _, col := range []string{"colleges", "timeline_events", "credentials"} {
		if err := db.Collection(col).Drop(ctx); err != nil {
			return fmt.Errorf("drop %s: %w", col, err)
		}
	}
	return nil
}

func request(t *testing.T, method, path string, payload interface{}, authed bool) (*http.Response, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.SetBasicAuth(adminUser, adminPass)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	raw, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, raw
}

func Test01_CreateCollegeUnauthorized(t *testing.T) {
	resp, _ := request(t, http.MethodPost, "/colleges", map[string]interface{}{
		"name": "Should Not Exist",
	}, false)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func Test02_CreateCollege(t *testing.T) {
	resp, raw := request(t, http.MethodPost, "/colleges", map[string]interface{}{
		"name":     "E2E Engineering College",
		"district": "Bhopal",
		"programs": []map[string]interface{}{
			{"name": "Computer Science", "cutoff": 90.5},
			{"name": "Civil Engineering", "cutoff": 80},
		},
	}, true)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, raw)
	}

	var envelope struct {
		Data struct {
			College struct {
				ID string `json:"id"`
			} `json:"college"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Data.College.ID == "" {
		t.Fatal("created college has no id")
	}
	collegeID = envelope.Data.College.ID
}

func Test03_ListCollegesNarrowed(t *testing.T) {
	resp, raw := request(t, http.MethodGet, "/colleges?program=computer", nil, false)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var envelope struct {
		Data struct {
			Colleges []struct {
				Name     string `json:"name"`
				Programs []struct {
					Name string `json:"name"`
				} `json:"programs"`
			} `json:"colleges"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(envelope.Data.Colleges) != 1 {
		t.Fatalf("expected 1 college, got %d", len(envelope.Data.Colleges))
	}
	if n := len(envelope.Data.Colleges[0].Programs); n != 1 {
		t.Fatalf("expected narrowed program list of 1, got %d", n)
	}
}

func Test04_TimelineRoundTrip(t *testing.T) {
	resp, raw := request(t, http.MethodPost, "/timeline", map[string]interface{}{
		"college_id": collegeID,
		"type":       "admission",
		"title":      "E2E Admission Window",
		"start_date": "2026-06-01T00:00:00Z",
		"end_date":   "2026-06-30T00:00:00Z",
	}, false)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, raw)
	}

	resp, raw = request(t, http.MethodGet, "/timeline/college/"+collegeID, nil, false)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if !bytes.Contains(raw, []byte("E2E Admission Window")) {
		t.Fatalf("event missing from college timeline: %s", raw)
	}
}

func Test05_Export(t *testing.T) {
	resp, raw := request(t, http.MethodGet, "/colleges/export", nil, true)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if len(raw) == 0 {
		t.Fatal("empty export body")
	}
}

func Test06_DeleteCollege(t *testing.T) {
	resp, _ := request(t, http.MethodDelete, "/colleges/"+collegeID, nil, true)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	resp, _ = request(t, http.MethodDelete, "/colleges/"+collegeID, nil, true)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", resp.StatusCode)
	}
}
