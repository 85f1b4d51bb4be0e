package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"clinica-pet-feliz/internal/router"
)

func TestHTTP_EndToEnd_ClinicScenario(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// 1) Veterinario nuevo => id 1
	vetID := createResource(t, ts.URL, "/veterinario", map[string]any{
		"nome": "Dr. João",
		"crmv": "12345-SP",
	})
	if vetID != 1 {
		t.Fatalf("expected vet id 1, got %d", vetID)
	}

	// 2) Mismo CRMV => 409
	{
		st, body := doReq(t, ts.URL, "POST", "/veterinario", map[string]any{
			"nome": "Dra. Ana",
			"crmv": "12345-SP",
		})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 duplicate crmv, got %d body=%s", st, string(body))
		}
		expectMsg(t, body, "crmv already registered")
	}

	// 3) Tutor nuevo => id 1
	tutorID := createResource(t, ts.URL, "/tutor", map[string]any{
		"nome": "Maria",
		"cpf":  "123.456.789-00",
	})
	if tutorID != 1 {
		t.Fatalf("expected tutor id 1, got %d", tutorID)
	}

	// 4) Mascota del tutor => id 1
	petID := createResource(t, ts.URL, "/pet", map[string]any{
		"nome":            "Rex",
		"especie":         "Cachorro",
		"data_nascimento": "2020-03-01",
		"id_tutor":        tutorID,
	})
	if petID != 1 {
		t.Fatalf("expected pet id 1, got %d", petID)
	}

	// 5) Tutor inexistente => 422
	{
		st, body := doReq(t, ts.URL, "POST", "/pet", map[string]any{
			"nome":            "Fantasma",
			"especie":         "Gato",
			"data_nascimento": "2021-01-01",
			"id_tutor":        999,
		})
		if st != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422 unknown tutor, got %d body=%s", st, string(body))
		}
		expectMsg(t, body, "tutor does not exist")
	}

	// 6) Consulta
	apptID := createResource(t, ts.URL, "/consulta", map[string]any{
		"id_vet":    vetID,
		"id_pet":    petID,
		"data_hora": "2025-11-10T14:30:00Z",
		"valor":     150.5,
	})

	// 7) Mismo vet + horario => 409
	{
		st, body := doReq(t, ts.URL, "POST", "/consulta", map[string]any{
			"id_vet":    vetID,
			"id_pet":    petID,
			"data_hora": "2025-11-10T14:30:00Z",
		})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 double booking, got %d body=%s", st, string(body))
		}
	}

	// 8) El listado de consultas trae la vista con nombres
	{
		st, body := doReq(t, ts.URL, "GET", "/consulta", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list consultas, got %d body=%s", st, string(body))
		}
		var views []map[string]any
		if err := json.Unmarshal(body, &views); err != nil {
			t.Fatalf("decode consultas: %v body=%s", err, string(body))
		}
		if len(views) != 1 {
			t.Fatalf("expected 1 consulta, got %d", len(views))
		}
		v := views[0]
		if v["id"].(float64) != float64(apptID) || v["crmv"] != "12345-SP" || v["nome_vet"] != "Dr. João" ||
			v["cpf"] != "123.456.789-00" || v["nome_tutor"] != "Maria" || v["nome_pet"] != "Rex" ||
			v["data_hora"] != "2025-11-10T14:30:00Z" || v["valor"].(float64) != 150.5 {
			t.Fatalf("unexpected consulta view: %v", v)
		}
	}

	// 9) Borrar el veterinario arrastra su consulta
	{
		st, body := doReq(t, ts.URL, "DELETE", "/veterinario/1", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 delete vet, got %d body=%s", st, string(body))
		}
		var deleted map[string]any
		_ = json.Unmarshal(body, &deleted)
		if deleted["crmv"] != "12345-SP" {
			t.Fatalf("expected deleted vet in body, got %s", string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/consulta", nil)
		if st != http.StatusOK || strings.TrimSpace(string(body)) != "[]" {
			t.Fatalf("expected empty consultas after vet delete, got %d body=%s", st, string(body))
		}
	}
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/consulta/1", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for cascaded consulta, got %d", st)
		}
	}
	{
		st, body := doReq(t, ts.URL, "PUT", "/veterinario/1", map[string]any{"nome": "x", "crmv": "x"})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 update deleted vet, got %d body=%s", st, string(body))
		}
		expectMsg(t, body, "veterinarian not found")
	}
}

func TestHTTP_UpdateReplacesAllFields(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	id := createResource(t, ts.URL, "/tutor", map[string]any{
		"nome":            "Maria",
		"cpf":             "111",
		"data_nascimento": "1990-01-20",
		"cidade":          "São Paulo",
		"numero":          100,
	})

	st, body := doReq(t, ts.URL, "PUT", "/tutor/"+strconv.FormatInt(id, 10), map[string]any{
		"nome": "Maria Souza",
		"cpf":  "111",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 update tutor, got %d body=%s", st, string(body))
	}

	var got map[string]any
	_ = json.Unmarshal(body, &got)
	if got["nome"] != "Maria Souza" || got["cidade"] != "" || got["numero"] != nil || got["data_nascimento"] != nil {
		t.Fatalf("expected absent fields cleared, got %s", string(body))
	}
}

func TestHTTP_BadRequests(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	cases := []struct {
		method, path string
		body         string
		status       int
		msg          string
	}{
		{"POST", "/veterinario", "{nope", http.StatusBadRequest, "invalid json"},
		{"POST", "/veterinario", `{"nome":"Dr. João","crmv":"123456789"}`, http.StatusBadRequest, "crmv must be at most 8 characters"},
		{"POST", "/tutor", `{"cpf":"111"}`, http.StatusBadRequest, "nome is required"},
		{"POST", "/pet", `{"especie":"Gato","id_tutor":1,"data_nascimento":"01/02/2020"}`, http.StatusBadRequest, "data_nascimento must be YYYY-MM-DD"},
		{"POST", "/consulta", `{"id_vet":1,"id_pet":1,"data_hora":"amanhã"}`, http.StatusBadRequest, "data_hora must be RFC3339"},
		{"DELETE", "/pet/abc", "", http.StatusBadRequest, "invalid id"},
		{"DELETE", "/tutor/0", "", http.StatusBadRequest, "invalid id"},
		{"DELETE", "/pet/5", "", http.StatusNotFound, "pet not found"},
		{"PUT", "/consulta/5", `{"data_hora":"2025-11-10T14:30:00Z"}`, http.StatusNotFound, "appointment not found"},
	}

	for _, c := range cases {
		req, err := http.NewRequest(c.method, ts.URL+c.path, strings.NewReader(c.body))
		if err != nil {
			t.Fatalf("new request: %v", err)
		}
		res, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("do request: %v", err)
		}
		body, _ := io.ReadAll(res.Body)
		res.Body.Close()

		if res.StatusCode != c.status {
			t.Fatalf("%s %s: expected %d, got %d body=%s", c.method, c.path, c.status, res.StatusCode, string(body))
		}
		expectMsg(t, body, c.msg)
	}
}

func TestHTTP_WelcomeHealthAndDocs(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/", nil)
	if st != http.StatusOK || string(body) != "Bem vindo à Clinica Pet Feliz!!!" {
		t.Fatalf("unexpected welcome: %d %s", st, string(body))
	}

	st, body = doReq(t, ts.URL, "GET", "/health", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("unexpected health: %d %s", st, string(body))
	}

	st, body = doReq(t, ts.URL, "GET", "/api/doc.json", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 doc.json, got %d", st)
	}
	var doc struct {
		Paths map[string]any `json:"paths"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		t.Fatalf("decode doc.json: %v", err)
	}
	for _, p := range []string{"/veterinario", "/tutor/{id}", "/pet", "/consulta/{id}"} {
		if _, ok := doc.Paths[p]; !ok {
			t.Fatalf("doc.json missing path %s", p)
		}
	}
}

func createResource(t *testing.T, baseURL, path string, payload map[string]any) int64 {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", path, payload)
	if st != http.StatusOK {
		t.Fatalf("expected 200 create %s, got %d body=%s", path, st, string(body))
	}

	var resp struct {
		ID int64 `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == 0 {
		t.Fatalf("create %s: missing id body=%s", path, string(body))
	}
	return resp.ID
}

func expectMsg(t *testing.T, body []byte, want string) {
	t.Helper()

	var resp struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode error body: %v body=%s", err, string(body))
	}
	if resp.Msg != want {
		t.Fatalf("expected msg %q, got %q", want, resp.Msg)
	}
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
