package pdf

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// SlipData is everything a payslip document shows. Amounts are already
// resolved; the renderer does no payroll arithmetic.
type SlipData struct {
	EmployeeName       string
	PositionName       string
	Period             string
	BasePay            decimal.Decimal
	PositionAllowance  decimal.Decimal
	WeekdayOvertimePay decimal.Decimal
	WeekendOvertimePay decimal.Decimal
	Allowances         map[string]decimal.Decimal
	Deductions         map[string]decimal.Decimal
	NetPay             decimal.Decimal
	StatusLabel        string
}

const (
	companyName    = "PT. Otomotif Maju Jaya"
	companyAddress = "Kawasan Industri Cikarang, Jawa Barat"
)

// FormatRupiah renders an amount as "Rp1.000.000". Fractions are dropped;
// payroll amounts are whole rupiah by the time they reach a document.
func FormatRupiah(amount decimal.Decimal) string {
	digits := amount.IntPart()
	neg := digits < 0
	if neg {
		digits = -digits
	}

	s := fmt.Sprintf("%d", digits)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	if neg {
		return "-Rp" + b.String()
	}
	return "Rp" + b.String()
}

// RenderSlip produces the payslip PDF as bytes, ready to be attached to an
// email.
func RenderSlip(data SlipData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(120, 8, companyName, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 8, "SLIP GAJI", "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(120, 5, companyAddress, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 5, "PERIODE: "+strings.ToUpper(data.Period), "", 1, "R", false, 0, "")
	pdf.Ln(2)
	pdf.SetLineWidth(0.6)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(4)

	// Employee block
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(35, 6, "Nama Karyawan", "", 0, "L", false, 0, "")
	pdf.CellFormat(60, 6, ": "+data.EmployeeName, "", 0, "L", false, 0, "")
	pdf.CellFormat(25, 6, "Jabatan", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, ": "+data.PositionName, "", 1, "L", false, 0, "")
	pdf.CellFormat(35, 6, "Status", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, ": "+data.StatusLabel, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Earnings / deductions columns
	earnings := [][2]string{
		{"Gaji Pokok", FormatRupiah(data.BasePay)},
	}
	if data.PositionAllowance.IsPositive() {
		earnings = append(earnings, [2]string{"Tunjangan Jabatan", FormatRupiah(data.PositionAllowance)})
	}
	if data.WeekdayOvertimePay.IsPositive() {
		earnings = append(earnings, [2]string{"Lembur Hari Kerja", FormatRupiah(data.WeekdayOvertimePay)})
	}
	if data.WeekendOvertimePay.IsPositive() {
		earnings = append(earnings, [2]string{"Lembur Akhir Pekan", FormatRupiah(data.WeekendOvertimePay)})
	}
	earnings = append(earnings, sortedLines(data.Allowances)...)

	deductions := sortedLines(data.Deductions)
	if len(deductions) == 0 {
		deductions = [][2]string{{"-", FormatRupiah(decimal.Zero)}}
	}

	writeColumnTable(pdf, "PENDAPATAN", "POTONGAN", earnings, deductions)

	// Net pay banner
	pdf.Ln(6)
	pdf.SetFillColor(230, 230, 230)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(120, 10, "GAJI BERSIH (TAKE HOME PAY)", "1", 0, "L", true, 0, "")
	pdf.CellFormat(0, 10, FormatRupiah(data.NetPay), "1", 1, "R", true, 0, "")

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(0, 5, "Dokumen ini dibuat otomatis dan tidak memerlukan tanda tangan.", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func sortedLines(items map[string]decimal.Decimal) [][2]string {
	names := make([]string, 0, len(items))
	for name := range items {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([][2]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, [2]string{name, FormatRupiah(items[name])})
	}
	return lines
}

func writeColumnTable(pdf *gofpdf.Fpdf, leftTitle, rightTitle string, left, right [][2]string) {
	const colWidth = 95.0

	pdf.SetFillColor(220, 220, 220)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(colWidth, 8, leftTitle, "1", 0, "C", true, 0, "")
	pdf.CellFormat(colWidth, 8, rightTitle, "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	rows := len(left)
	if len(right) > rows {
		rows = len(right)
	}
	for i := 0; i < rows; i++ {
		writeColumnCell(pdf, colWidth, left, i)
		writeColumnCell(pdf, colWidth, right, i)
		pdf.Ln(-1)
	}
}

func writeColumnCell(pdf *gofpdf.Fpdf, width float64, lines [][2]string, i int) {
	if i >= len(lines) {
		pdf.CellFormat(width, 7, "", "LR", 0, "L", false, 0, "")
		return
	}
	pdf.CellFormat(width*0.6, 7, lines[i][0], "L", 0, "L", false, 0, "")
	pdf.CellFormat(width*0.4, 7, lines[i][1], "R", 0, "R", false, 0, "")
}
