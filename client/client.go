// Package client menyimpan state sesi sisi pemakai API employdir:
// user yang sedang login, cache daftar karyawan, dan flow request-nya.
// State hanya hidup di memory, hilang saat program selesai.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

// User adalah akun hasil login.
type User struct {
	ID       int    `json:"id"`
	Sno      int    `json:"f_sno"`
	Username string `json:"f_userName"`
	Email    string `json:"f_Email"`
}

// Employee mengikuti format JSON server (field f_*).
type Employee struct {
	ID          int    `json:"id"`
	FID         int    `json:"f_Id"`
	Image       string `json:"f_Image"`
	Name        string `json:"f_Name"`
	Email       string `json:"f_Email"`
	Mobile      string `json:"f_Mobile"`
	Designation string `json:"f_Designation"`
	Gender      string `json:"f_gender"`
	Course      string `json:"f_Course"`
	CreateDate  string `json:"f_Createdate"`
}

// EmployeeForm adalah input form tambah karyawan.
// Courses dikirim sebagai string dipisah koma.
type EmployeeForm struct {
	Name        string
	Email       string
	Mobile      string
	Designation string
	Gender      string
	Courses     []string
}

// EmployeeUpdate adalah partial update; field nil tidak dikirim.
type EmployeeUpdate struct {
	Image       *string `json:"f_Image,omitempty"`
	Name        *string `json:"f_Name,omitempty"`
	Email       *string `json:"f_Email,omitempty"`
	Mobile      *string `json:"f_Mobile,omitempty"`
	Designation *string `json:"f_Designation,omitempty"`
	Gender      *string `json:"f_gender,omitempty"`
	Course      *string `json:"f_Course,omitempty"`
}

// Session memegang state sesi browser: user aktif, token,
// flag loading, pesan error terakhir, dan cache daftar karyawan.
type Session struct {
	BaseURL string
	HTTP    *http.Client

	User      *User // nil berarti belum login
	Token     string
	Loading   bool
	LastError string
	Employees []Employee
}

func NewSession(baseURL string) *Session {
	return &Session{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    http.DefaultClient,
	}
}

// fail mencatat pesan error terakhir; cache tidak disentuh.
func (s *Session) fail(msg string) error {
	s.LastError = msg
	return fmt.Errorf("%s", msg)
}

func decodeError(resp *http.Response, fallback string) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		return body.Error
	}
	return fallback
}

// =================== AUTH FLOW ===================

// Login menyimpan user dan token hasil login. Kalau gagal,
// user tetap nil dan hanya pesan error yang berubah.
func (s *Session) Login(email, password string) error {
	s.Loading = true
	s.LastError = ""
	defer func() { s.Loading = false }()

	payload, _ := json.Marshal(map[string]string{"f_Email": email, "f_Pwd": password})
	resp, err := s.HTTP.Post(s.BaseURL+"/login", "application/json", bytes.NewReader(payload))
	if err != nil {
		return s.fail("Tidak bisa menghubungi server")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return s.fail("Email atau password salah")
	}

	var body struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return s.fail("Respon server tidak valid")
	}

	s.User = &body.User
	s.Token = body.Token
	return nil
}

// Signup mendaftarkan akun baru; tidak mengubah state login.
func (s *Session) Signup(username, email, password string) error {
	s.Loading = true
	s.LastError = ""
	defer func() { s.Loading = false }()

	payload, _ := json.Marshal(map[string]string{
		"f_userName": username,
		"f_Email":    email,
		"f_Pwd":      password,
	})
	resp, err := s.HTTP.Post(s.BaseURL+"/signup", "application/json", bytes.NewReader(payload))
	if err != nil {
		return s.fail("Tidak bisa menghubungi server")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return s.fail(decodeError(resp, "Registrasi gagal, coba lagi"))
	}
	return nil
}

// =================== EMPLOYEE FLOW ===================

// FetchEmployees mengganti seluruh cache dengan hasil fetch baru.
func (s *Session) FetchEmployees() error {
	resp, err := s.HTTP.Get(s.BaseURL + "/getEmployees")
	if err != nil {
		return s.fail("Tidak bisa menghubungi server")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return s.fail("Gagal mengambil daftar karyawan")
	}

	var employees []Employee
	if err := json.NewDecoder(resp.Body).Decode(&employees); err != nil {
		return s.fail("Respon server tidak valid")
	}
	s.Employees = employees
	return nil
}

// AddEmployee mengirim form multipart + satu file gambar.
// Sukses berarti refetch penuh, bukan merge inkremental.
func (s *Session) AddEmployee(form EmployeeForm, image io.Reader, filename string) error {
	s.LastError = ""

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	_ = w.WriteField("f_Name", form.Name)
	_ = w.WriteField("f_Email", form.Email)
	_ = w.WriteField("f_Mobile", form.Mobile)
	_ = w.WriteField("f_Designation", form.Designation)
	_ = w.WriteField("f_gender", form.Gender)
	_ = w.WriteField("f_Course", strings.Join(form.Courses, ","))

	part, err := w.CreateFormFile("f_Image", filename)
	if err != nil {
		return s.fail("Gagal menyiapkan upload")
	}
	if _, err := io.Copy(part, image); err != nil {
		return s.fail("Gagal membaca file gambar")
	}
	if err := w.Close(); err != nil {
		return s.fail("Gagal menyiapkan upload")
	}

	req, err := http.NewRequest(http.MethodPost, s.BaseURL+"/addEmployee", &buf)
	if err != nil {
		return s.fail("Gagal menyiapkan request")
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	s.authorize(req)

	resp, err := s.HTTP.Do(req)
	if err != nil {
		return s.fail("Tidak bisa menghubungi server")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return s.fail(decodeError(resp, "Gagal menambah karyawan"))
	}
	return s.FetchEmployees()
}

// UpdateEmployee mengirim partial update dan merge record hasilnya
// ke cache berdasarkan primary id.
func (s *Session) UpdateEmployee(id int, update EmployeeUpdate) error {
	s.LastError = ""

	payload, err := json.Marshal(update)
	if err != nil {
		return s.fail("Gagal menyiapkan request")
	}

	req, err := http.NewRequest(http.MethodPut, fmt.Sprintf("%s/updateEmployee/%d", s.BaseURL, id), bytes.NewReader(payload))
	if err != nil {
		return s.fail("Gagal menyiapkan request")
	}
	req.Header.Set("Content-Type", "application/json")
	s.authorize(req)

	resp, err := s.HTTP.Do(req)
	if err != nil {
		return s.fail("Tidak bisa menghubungi server")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return s.fail(decodeError(resp, "Gagal mengupdate karyawan"))
	}

	var updated Employee
	if err := json.NewDecoder(resp.Body).Decode(&updated); err != nil {
		return s.fail("Respon server tidak valid")
	}

	for i, e := range s.Employees {
		if e.ID == updated.ID {
			s.Employees[i] = updated
		}
	}
	return nil
}

// DeleteEmployee menghapus record lalu membuang entri cache yang cocok.
func (s *Session) DeleteEmployee(id int) error {
	s.LastError = ""

	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/deleteEmployee/%d", s.BaseURL, id), nil)
	if err != nil {
		return s.fail("Gagal menyiapkan request")
	}
	s.authorize(req)

	resp, err := s.HTTP.Do(req)
	if err != nil {
		return s.fail("Tidak bisa menghubungi server")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return s.fail(decodeError(resp, "Gagal menghapus karyawan"))
	}

	kept := s.Employees[:0]
	for _, e := range s.Employees {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.Employees = kept
	return nil
}

// Search memfilter cache secara lokal, substring case-insensitive
// di semua field teks. Tidak ada round-trip ke server.
func (s *Session) Search(term string) []Employee {
	term = strings.ToLower(term)
	var result []Employee
	for _, e := range s.Employees {
		haystack := strings.ToLower(strings.Join([]string{
			e.Name, e.Email, e.Mobile, e.Designation, e.Gender, e.Course,
		}, "\n"))
		if strings.Contains(haystack, term) {
			result = append(result, e)
		}
	}
	return result
}

func (s *Session) authorize(req *http.Request) {
	if s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}
}
