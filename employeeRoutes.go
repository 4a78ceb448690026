package main

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// =======================
// 🧩 Helper Functions
// =======================

// GetIDParam is a helper function to get the ID parameter from the URL and convert it to an integer.
func GetIDParam(c *gin.Context) (int, bool) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "❌ ID harus berupa angka"})
		return 0, false
	}
	return id, true
}

// ValidDesignations adalah daftar jabatan yang diterima.
var ValidDesignations = map[string]bool{
	"HR":      true,
	"Manager": true,
	"Sales":   true,
}

// employeeExists is a helper function to check if an employee record exists.
func employeeExists(db *sql.DB, id int) (bool, error) {
	var exists bool
	err := db.QueryRow("SELECT EXISTS(SELECT 1 FROM employees WHERE id = ?)", id).Scan(&exists)
	return exists, err
}

// emailTakenByOther mengecek apakah email sudah dipakai karyawan lain.
func emailTakenByOther(db *sql.DB, email string, id int) (bool, error) {
	var exists bool
	err := db.QueryRow("SELECT EXISTS(SELECT 1 FROM employees WHERE f_email = ? AND id != ?)", email, id).Scan(&exists)
	return exists, err
}

const employeeColumns = "id, f_id, f_image, f_name, f_email, f_mobile, f_designation, f_gender, f_course, f_createdate"

func scanEmployee(row *sql.Row) (EmployeeModel, error) {
	var e EmployeeModel
	err := row.Scan(
		&e.ID,
		&e.FID,
		&e.Image,
		&e.Name,
		&e.Email,
		&e.Mobile,
		&e.Designation,
		&e.Gender,
		&e.Course,
		&e.CreateDate,
	)
	return e, err
}

// =========================
// 👥 Employee Management
// =========================
func EmployeeRoutes(r *gin.Engine, db *sql.DB) {
	// 🟢 Public untuk melihat data karyawan
	r.GET("/getEmployees", func(c *gin.Context) {
		GetAllEmployees(c, db)
	})
	r.GET("/getEmployee/:id", func(c *gin.Context) {
		GetEmployeeByID(c, db)
	})
	r.GET("/searchEmployee/:id", func(c *gin.Context) {
		SearchEmployeeByFID(c, db)
	})

	// 🔐 Operasi tulis wajib login
	authorized := r.Group("/", AuthMiddleware())
	{
		authorized.POST("/addEmployee", func(c *gin.Context) {
			AddEmployee(c, db)
		})
		authorized.PUT("/updateEmployee/:id", func(c *gin.Context) {
			UpdateEmployee(c, db)
		})
		authorized.DELETE("/deleteEmployee/:id", func(c *gin.Context) {
			DeleteEmployee(c, db)
		})
	}
}

// ++++++++++++++++++++++++
//
//	Employee CREATE
//
// +++++++++++++++++++++++++
func AddEmployee(c *gin.Context, db *sql.DB) {
	name := strings.TrimSpace(c.PostForm("f_Name"))
	email := strings.ToLower(strings.TrimSpace(c.PostForm("f_Email")))
	mobile := strings.TrimSpace(c.PostForm("f_Mobile"))
	designation := strings.TrimSpace(c.PostForm("f_Designation"))
	gender := strings.TrimSpace(c.PostForm("f_gender"))
	course := strings.TrimSpace(c.PostForm("f_Course"))

	if name == "" || email == "" || mobile == "" || designation == "" || gender == "" || course == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "❌ Semua field karyawan wajib diisi"})
		return
	}

	if !ValidDesignations[designation] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "❌ Designation harus salah satu dari 'HR', 'Manager', atau 'Sales'"})
		return
	}

	// tanpa file gambar, record tidak boleh dibuat
	file, err := c.FormFile("f_Image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "❌ File gambar (f_Image) wajib diupload"})
		return
	}

	if taken, err := emailTakenByOther(db, email, 0); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Gagal memeriksa email"})
		return
	} else if taken {
		c.JSON(http.StatusConflict, gin.H{"error": "❌ Email karyawan sudah terdaftar"})
		return
	}

	imagePath, err := SaveImageFile(c, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Gagal menyimpan gambar"})
		return
	}

	// f_id = MAX(f_id)+1 dihitung di dalam INSERT, bukan counter di memory,
	// supaya tetap benar setelah proses restart
	_, err = db.Exec(`
		INSERT INTO employees (f_id, f_image, f_name, f_email, f_mobile, f_designation, f_gender, f_course, f_createdate)
		SELECT COALESCE(MAX(f_id), 0) + 1, ?, ?, ?, ?, ?, ?, ?, ? FROM employees
	`, imagePath, name, email, mobile, designation, gender, course, time.Now().Format("2006-01-02"))
	if err != nil {
		// file gambar yang sudah tersimpan tidak dihapus (tidak ada kompensasi)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Gagal menyimpan karyawan"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "✅ Karyawan berhasil ditambahkan"})
}

// ++++++++++++++++++++++++
//
//	Employee READ
//
// +++++++++++++++++++++++++
func GetAllEmployees(c *gin.Context, db *sql.DB) {
	rows, err := db.Query("SELECT " + employeeColumns + " FROM employees")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Gagal mengambil data karyawan"})
		return
	}
	defer rows.Close()

	employees := []EmployeeModel{}
	for rows.Next() {
		var e EmployeeModel
		err := rows.Scan(
			&e.ID,
			&e.FID,
			&e.Image,
			&e.Name,
			&e.Email,
			&e.Mobile,
			&e.Designation,
			&e.Gender,
			&e.Course,
			&e.CreateDate,
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Gagal membaca data karyawan"})
			return
		}
		employees = append(employees, e)
	}

	// frontend memakai array mentah, tanpa wrapper
	c.JSON(http.StatusOK, employees)
}

func GetEmployeeByID(c *gin.Context, db *sql.DB) {
	id, ok := GetIDParam(c)
	if !ok {
		return
	}

	e, err := scanEmployee(db.QueryRow("SELECT "+employeeColumns+" FROM employees WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": "❌ Karyawan tidak ditemukan"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Gagal mengambil data karyawan"})
		return
	}

	c.JSON(http.StatusOK, e)
}

// SearchEmployeeByFID mencari berdasarkan nomor urut f_Id, bukan primary key.
func SearchEmployeeByFID(c *gin.Context, db *sql.DB) {
	fid, ok := GetIDParam(c)
	if !ok {
		return
	}

	e, err := scanEmployee(db.QueryRow("SELECT "+employeeColumns+" FROM employees WHERE f_id = ?", fid))
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": "❌ Karyawan tidak ditemukan"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Gagal mengambil data karyawan"})
		return
	}

	c.JSON(http.StatusOK, e)
}

// ++++++++++++++++++++++++
//
//	Employee UPDATE
//
// +++++++++++++++++++++++++
func UpdateEmployee(c *gin.Context, db *sql.DB) {
	id, ok := GetIDParam(c)
	if !ok {
		return
	}

	exists, err := employeeExists(db, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Gagal memeriksa karyawan"})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "❌ Karyawan tidak ditemukan"})
		return
	}

	var input EmployeeUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "❌ Format JSON tidak valid"})
		return
	}

	if input.Designation != nil && !ValidDesignations[*input.Designation] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "❌ Designation harus salah satu dari 'HR', 'Manager', atau 'Sales'"})
		return
	}

	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		input.Email = &email
		if taken, err := emailTakenByOther(db, email, id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Gagal memeriksa email"})
			return
		} else if taken {
			c.JSON(http.StatusConflict, gin.H{"error": "❌ Email karyawan sudah terdaftar"})
			return
		}
	}

	// gambar dari form edit dikirim sebagai data-URL base64;
	// di-decode dan disimpan sebagai file supaya representasinya sama dengan create
	if input.Image != nil && IsDataURL(*input.Image) {
		path, err := SaveBase64Image(*input.Image)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "❌ Gambar base64 tidak valid"})
			return
		}
		input.Image = &path
	}

	// bangun SET clause hanya dari field yang dikirim (partial update, last write wins)
	setClauses := []string{}
	args := []interface{}{}
	addSet := func(column string, value *string) {
		if value != nil {
			setClauses = append(setClauses, column+" = ?")
			args = append(args, *value)
		}
	}
	addSet("f_image", input.Image)
	addSet("f_name", input.Name)
	addSet("f_email", input.Email)
	addSet("f_mobile", input.Mobile)
	addSet("f_designation", input.Designation)
	addSet("f_gender", input.Gender)
	addSet("f_course", input.Course)

	if len(setClauses) > 0 {
		args = append(args, id)
		query := "UPDATE employees SET " + strings.Join(setClauses, ", ") + " WHERE id = ?"
		if _, err := db.Exec(query, args...); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Gagal mengupdate karyawan"})
			return
		}
	}

	// kembalikan record hasil update
	e, err := scanEmployee(db.QueryRow("SELECT "+employeeColumns+" FROM employees WHERE id = ?", id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Gagal mengambil data karyawan"})
		return
	}

	c.JSON(http.StatusOK, e)
}

// ++++++++++++++++++++++++
//
//	Employee DELETE
//
// +++++++++++++++++++++++++
func DeleteEmployee(c *gin.Context, db *sql.DB) {
	id, ok := GetIDParam(c)
	if !ok {
		return
	}

	res, err := db.Exec("DELETE FROM employees WHERE id = ?", id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Gagal menghapus karyawan"})
		return
	}

	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "❌ Karyawan tidak ditemukan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "✅ Karyawan berhasil dihapus"})
}
