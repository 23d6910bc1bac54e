package pdf

import (
	"bytes"
	"fmt"

	"editora_prisma/internal/domain/entities"
	"editora_prisma/internal/usecase/interfaces"

	"github.com/go-pdf/fpdf"
)

const companyName = "Editora Prisma"

// QuoteRenderer lays out a quote as an A4 PDF: header with the quote number,
// recipient block, item table, totals and payment terms.
type QuoteRenderer struct{}

var _ interfaces.IQuoteRenderer = (*QuoteRenderer)(nil)

func NewQuoteRenderer() *QuoteRenderer {
	return &QuoteRenderer{}
}

func (r *QuoteRenderer) Render(q entities.Quote, c entities.Client) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle(fmt.Sprintf("Orçamento %s", displayNumber(q)), true)
	doc.AddPage()

	// Core fonts are cp1252; translate the UTF-8 labels and data.
	tr := doc.UnicodeTranslatorFromDescriptor("")

	r.header(doc, tr, q)
	r.recipient(doc, tr, q, c)
	r.items(doc, tr, q)
	r.totals(doc, tr, q)
	r.paymentTerms(doc, tr, q)
	r.footer(doc, tr, q)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render quote pdf: %w", err)
	}
	return buf.Bytes(), nil
}

type translator func(string) string

func (r *QuoteRenderer) header(doc *fpdf.Fpdf, tr translator, q entities.Quote) {
	doc.SetFont("Helvetica", "B", 18)
	doc.Cell(0, 10, companyName)
	doc.Ln(10)

	doc.SetFont("Helvetica", "", 12)
	doc.Cell(0, 7, tr(fmt.Sprintf("Orçamento nº %s", displayNumber(q))))
	doc.Ln(7)
	doc.SetFont("Helvetica", "", 9)
	doc.SetTextColor(110, 110, 110)
	doc.Cell(0, 5, tr(fmt.Sprintf("Emitido em %s", q.CreatedAt.Format("02/01/2006"))))
	if !q.ValidUntil.IsZero() {
		doc.Ln(5)
		doc.Cell(0, 5, tr(fmt.Sprintf("Válido até %s", q.ValidUntil.Format("02/01/2006"))))
	}
	doc.SetTextColor(0, 0, 0)
	doc.Ln(10)
}

func (r *QuoteRenderer) recipient(doc *fpdf.Fpdf, tr translator, q entities.Quote, c entities.Client) {
	doc.SetFont("Helvetica", "B", 11)
	doc.Cell(0, 6, "Cliente")
	doc.Ln(6)
	doc.SetFont("Helvetica", "", 10)

	name, email, phone := "", "", ""
	switch {
	case c.ID != "":
		name, email, phone = c.Name, c.Email, c.Phone
		if c.ClientNumber != 0 {
			name = fmt.Sprintf("%s (cliente nº %d)", name, c.ClientNumber)
		}
	case q.HasContact():
		name, email, phone = q.Contact.Name, q.Contact.Email, q.Contact.Phone
	}

	doc.Cell(0, 5, tr(name))
	doc.Ln(5)
	if email != "" {
		doc.Cell(0, 5, tr(email))
		doc.Ln(5)
	}
	if phone != "" {
		doc.Cell(0, 5, tr(phone))
		doc.Ln(5)
	}
	doc.Ln(5)

	if q.ProjectTitle != "" {
		doc.SetFont("Helvetica", "B", 11)
		doc.Cell(0, 6, "Projeto")
		doc.Ln(6)
		doc.SetFont("Helvetica", "", 10)
		doc.Cell(0, 5, tr(q.ProjectTitle))
		doc.Ln(10)
	}
}

func (r *QuoteRenderer) items(doc *fpdf.Fpdf, tr translator, q entities.Quote) {
	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(235, 235, 235)
	doc.CellFormat(95, 7, tr("Descrição"), "1", 0, "L", true, 0, "")
	doc.CellFormat(20, 7, "Qtd", "1", 0, "C", true, 0, "")
	doc.CellFormat(35, 7, "Valor unit.", "1", 0, "R", true, 0, "")
	doc.CellFormat(35, 7, "Total", "1", 1, "R", true, 0, "")

	doc.SetFont("Helvetica", "", 10)
	for _, item := range q.Items {
		doc.CellFormat(95, 7, tr(item.Description), "1", 0, "L", false, 0, "")
		doc.CellFormat(20, 7, fmt.Sprintf("%d", item.Quantity), "1", 0, "C", false, 0, "")
		doc.CellFormat(35, 7, money(item.UnitPrice), "1", 0, "R", false, 0, "")
		doc.CellFormat(35, 7, money(item.Total), "1", 1, "R", false, 0, "")
	}
	doc.Ln(4)
}

func (r *QuoteRenderer) totals(doc *fpdf.Fpdf, tr translator, q entities.Quote) {
	row := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		doc.SetFont("Helvetica", style, 10)
		doc.CellFormat(150, 6, tr(label), "", 0, "R", false, 0, "")
		doc.CellFormat(35, 6, value, "", 1, "R", false, 0, "")
	}

	row("Subtotal", money(q.Totals.Subtotal), false)
	if q.Totals.Discount != 0 {
		row("Desconto", "-"+money(q.Totals.Discount), false)
	}
	if q.Totals.Tax != 0 {
		row("Impostos", money(q.Totals.Tax), false)
	}
	if q.Totals.Freight != 0 {
		row("Frete", money(q.Totals.Freight), false)
	}
	row("Total", money(q.Totals.GrandTotal), true)
	doc.Ln(6)
}

func (r *QuoteRenderer) paymentTerms(doc *fpdf.Fpdf, tr translator, q entities.Quote) {
	doc.SetFont("Helvetica", "B", 11)
	doc.Cell(0, 6, tr("Condições de pagamento"))
	doc.Ln(6)
	doc.SetFont("Helvetica", "", 10)

	if q.PaymentPlan == nil || q.PaymentPlan.Installments <= 1 {
		doc.Cell(0, 5, tr("Pagamento à vista, 30 dias após a aprovação."))
		doc.Ln(5)
		return
	}

	n := q.PaymentPlan.Installments
	doc.Cell(0, 5, tr(fmt.Sprintf("%d parcelas mensais de %s.", n, money(q.Totals.GrandTotal/float64(n)))))
	doc.Ln(5)
}

func (r *QuoteRenderer) footer(doc *fpdf.Fpdf, tr translator, q entities.Quote) {
	doc.SetY(-25)
	doc.SetFont("Helvetica", "", 8)
	doc.SetTextColor(130, 130, 130)
	doc.Cell(0, 4, tr(fmt.Sprintf("%s · documento %s", companyName, q.ID)))
}

func displayNumber(q entities.Quote) string {
	if q.Number != "" {
		return q.Number
	}
	return q.ID
}

func money(v float64) string {
	return fmt.Sprintf("R$ %.2f", v)
}
