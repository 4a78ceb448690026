package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI meniru server employdir secukupnya untuk menguji state sesi.
type fakeAPI struct {
	employees []Employee
	nextID    int
	lastAuth  string
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Email    string `json:"f_Email"`
			Password string `json:"f_Pwd"`
		}
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in.Password != "benar" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "email atau password salah"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"token": "tok-123",
			"user":  User{ID: 1, Sno: 1, Username: "alice", Email: in.Email},
		})
	})

	mux.HandleFunc("POST /signup", func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Email string `json:"f_Email"`
		}
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in.Email == "dupe@x.com" {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Username atau email sudah terdaftar"})
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	})

	mux.HandleFunc("GET /getEmployees", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(f.employees)
	})

	mux.HandleFunc("POST /addEmployee", func(w http.ResponseWriter, r *http.Request) {
		f.lastAuth = r.Header.Get("Authorization")
		_ = r.ParseMultipartForm(1 << 20)
		f.nextID++
		f.employees = append(f.employees, Employee{
			ID:          f.nextID,
			FID:         f.nextID,
			Image:       "uploads/f_Image-x.png",
			Name:        r.FormValue("f_Name"),
			Email:       r.FormValue("f_Email"),
			Mobile:      r.FormValue("f_Mobile"),
			Designation: r.FormValue("f_Designation"),
			Gender:      r.FormValue("f_gender"),
			Course:      r.FormValue("f_Course"),
			CreateDate:  "2026-08-30",
		})
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	})

	mux.HandleFunc("PUT /updateEmployee/", func(w http.ResponseWriter, r *http.Request) {
		f.lastAuth = r.Header.Get("Authorization")
		id, _ := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/updateEmployee/"))
		var in EmployeeUpdate
		_ = json.NewDecoder(r.Body).Decode(&in)
		for i := range f.employees {
			if f.employees[i].ID == id {
				if in.Name != nil {
					f.employees[i].Name = *in.Name
				}
				if in.Course != nil {
					f.employees[i].Course = *in.Course
				}
				_ = json.NewEncoder(w).Encode(f.employees[i])
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "tidak ditemukan"})
	})

	mux.HandleFunc("DELETE /deleteEmployee/", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/deleteEmployee/"))
		for i := range f.employees {
			if f.employees[i].ID == id {
				f.employees = append(f.employees[:i], f.employees[i+1:]...)
				_ = json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "tidak ditemukan"})
	})

	return mux
}

func newTestSession(t *testing.T, api *fakeAPI) *Session {
	t.Helper()
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)
	return NewSession(srv.URL)
}

func seed(names ...string) []Employee {
	var employees []Employee
	for i, name := range names {
		employees = append(employees, Employee{
			ID:          i + 1,
			FID:         i + 1,
			Image:       "uploads/f_Image-x.png",
			Name:        name,
			Email:       strings.ToLower(name) + "@x.com",
			Mobile:      "555",
			Designation: "HR",
			Gender:      "Male",
			Course:      "MCA",
			CreateDate:  "2026-08-30",
		})
	}
	return employees
}

func TestLoginStoresUser(t *testing.T) {
	s := newTestSession(t, &fakeAPI{})

	err := s.Login("a@x.com", "benar")
	require.NoError(t, err)

	require.NotNil(t, s.User)
	assert.Equal(t, "alice", s.User.Username)
	assert.Equal(t, "tok-123", s.Token)
	assert.Empty(t, s.LastError)
	assert.False(t, s.Loading)
}

func TestLoginFailureLeavesStateClean(t *testing.T) {
	s := newTestSession(t, &fakeAPI{})

	err := s.Login("a@x.com", "salah")
	require.Error(t, err)

	assert.Nil(t, s.User)
	assert.Empty(t, s.Token)
	assert.NotEmpty(t, s.LastError)
}

func TestSignupSurfacesServerError(t *testing.T) {
	s := newTestSession(t, &fakeAPI{})

	require.NoError(t, s.Signup("bob", "baru@x.com", "p1"))

	err := s.Signup("bob", "dupe@x.com", "p1")
	require.Error(t, err)
	assert.Contains(t, s.LastError, "sudah terdaftar")
}

func TestAddEmployeeRefetchesList(t *testing.T) {
	api := &fakeAPI{}
	s := newTestSession(t, api)
	require.NoError(t, s.Login("a@x.com", "benar"))

	form := EmployeeForm{
		Name:        "Jo",
		Email:       "jo@x.com",
		Mobile:      "555",
		Designation: "HR",
		Gender:      "Male",
		Courses:     []string{"MCA", "BCA"},
	}
	require.NoError(t, s.AddEmployee(form, strings.NewReader("fake-png"), "foto.png"))

	// cache diisi ulang lewat refetch penuh
	require.Len(t, s.Employees, 1)
	assert.Equal(t, "MCA,BCA", s.Employees[0].Course)
	// token ikut terkirim di operasi tulis
	assert.Equal(t, "Bearer tok-123", api.lastAuth)
}

func TestUpdateEmployeeMergesIntoCache(t *testing.T) {
	api := &fakeAPI{employees: seed("Jo", "Budi"), nextID: 2}
	s := newTestSession(t, api)
	require.NoError(t, s.FetchEmployees())
	require.Len(t, s.Employees, 2)

	name := "Joko"
	require.NoError(t, s.UpdateEmployee(1, EmployeeUpdate{Name: &name}))

	assert.Equal(t, "Joko", s.Employees[0].Name)
	assert.Equal(t, "Budi", s.Employees[1].Name)
}

func TestDeleteEmployeeRemovesFromCache(t *testing.T) {
	api := &fakeAPI{employees: seed("Jo", "Budi"), nextID: 2}
	s := newTestSession(t, api)
	require.NoError(t, s.FetchEmployees())

	require.NoError(t, s.DeleteEmployee(1))
	require.Len(t, s.Employees, 1)
	assert.Equal(t, "Budi", s.Employees[0].Name)

	// mutasi gagal: cache tidak berubah
	err := s.DeleteEmployee(99)
	require.Error(t, err)
	assert.Len(t, s.Employees, 1)
	assert.NotEmpty(t, s.LastError)
}

func TestSearchFiltersLocally(t *testing.T) {
	s := &Session{Employees: seed("Jo", "Budi")}
	s.Employees[1].Designation = "Sales"
	s.Employees[1].Course = "BSC"

	tests := []struct {
		name     string
		term     string
		expected []string
	}{
		{name: "substring nama, beda kapital", term: "jO", expected: []string{"Jo"}},
		{name: "field designation", term: "sales", expected: []string{"Budi"}},
		{name: "field course", term: "bsc", expected: []string{"Budi"}},
		{name: "nomor hp cocok semua", term: "555", expected: []string{"Jo", "Budi"}},
		{name: "tidak ada yang cocok", term: "zzz", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var names []string
			for _, e := range s.Search(tt.term) {
				names = append(names, e.Name)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}
