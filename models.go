package main

// EmployeeModel merepresentasikan satu record karyawan.
// Nama field JSON (f_*) mengikuti format frontend lama supaya tetap kompatibel.
type EmployeeModel struct {
	ID          int    `json:"id"`            // primary key dari database
	FID         int    `json:"f_Id"`          // nomor urut karyawan, dihitung oleh database
	Image       string `json:"f_Image"`       // path file gambar di direktori upload
	Name        string `json:"f_Name"`
	Email       string `json:"f_Email"`       // UNIQUE
	Mobile      string `json:"f_Mobile"`
	Designation string `json:"f_Designation"` // "HR", "Manager", atau "Sales"
	Gender      string `json:"f_gender"`
	Course      string `json:"f_Course"`      // multi-select, disimpan sebagai string dipisah koma
	CreateDate  string `json:"f_Createdate"`  // tanggal saja (YYYY-MM-DD), diisi saat create
}

// EmployeeUpdateInput dipakai untuk partial update.
// Semua field pointer: nil berarti field tidak dikirim dan tidak diubah.
type EmployeeUpdateInput struct {
	Image       *string `json:"f_Image"` // boleh path ataupun data-URL base64, keduanya disimpan sebagai path
	Name        *string `json:"f_Name"`
	Email       *string `json:"f_Email"`
	Mobile      *string `json:"f_Mobile"`
	Designation *string `json:"f_Designation"`
	Gender      *string `json:"f_gender"`
	Course      *string `json:"f_Course"`
}
