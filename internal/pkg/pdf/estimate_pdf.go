package pdf

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"estimateai/internal/domain"
	"estimateai/internal/pkg/costing"
)

// EstimateRenderer builds the customer-facing PDF for an estimate using
// maroto/v2.
type EstimateRenderer struct {
	companyName string
}

func NewEstimateRenderer(companyName string) *EstimateRenderer {
	return &EstimateRenderer{companyName: companyName}
}

func (r *EstimateRenderer) Render(e *domain.Estimate, materials []domain.MaterialItem, labor []domain.LaborItem, totals costing.Totals) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	r.addHeader(m, e)
	r.addMaterialsTable(m, materials)
	r.addLaborTable(m, labor)
	r.addSummary(m, e, totals)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func (r *EstimateRenderer) addHeader(m core.Maroto, e *domain.Estimate) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(e.Title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	clientLine := ""
	if e.Client != nil {
		clientLine = fmt.Sprintf("Prepared for: %s", e.Client.Name)
	} else if r.companyName != "" {
		clientLine = r.companyName
	}

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(clientLine, props.Text{
					Size:  9,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", time.Now().Format("Jan 2, 2006")), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	if e.Description != "" {
		m.AddRows(
			row.New(8).Add(
				col.New(12).Add(
					text.New(e.Description, props.Text{
						Size:  9,
						Align: align.Left,
					}),
				),
			),
		)
	}

	m.AddRows(row.New(4))
}

func (r *EstimateRenderer) addMaterialsTable(m core.Maroto, materials []domain.MaterialItem) {
	if len(materials) == 0 {
		return
	}

	r.addSectionTitle(m, "Materials")
	r.addTableHeader(m, "Material", "Qty", "Unit", "Unit Cost", "Total")

	for i, item := range materials {
		r.addTableRow(m, i,
			item.Name,
			fmt.Sprintf("%.2f", item.Quantity),
			item.Unit,
			fmt.Sprintf("$%.2f", item.UnitCost),
			fmt.Sprintf("$%.2f", item.TotalCost),
		)
	}

	m.AddRows(row.New(4))
}

func (r *EstimateRenderer) addLaborTable(m core.Maroto, labor []domain.LaborItem) {
	if len(labor) == 0 {
		return
	}

	r.addSectionTitle(m, "Labor")
	r.addTableHeader(m, "Task", "Hours", "", "Rate/Hour", "Total")

	for i, item := range labor {
		r.addTableRow(m, i,
			item.Name,
			fmt.Sprintf("%.2f", item.Hours),
			"",
			fmt.Sprintf("$%.2f", item.RatePerHour),
			fmt.Sprintf("$%.2f", item.TotalCost),
		)
	}

	m.AddRows(row.New(4))
}

func (r *EstimateRenderer) addSectionTitle(m core.Maroto, title string) {
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(title, props.Text{
					Size:  11,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
	)
}

func (r *EstimateRenderer) addTableHeader(m core.Maroto, name, qty, unit, rate, total string) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(5).Add(
				text.New(name, headerTextLeft),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New(qty, headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New(unit, headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New(rate, headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New(total, headerText),
			).WithStyle(&headerCell),
		),
	)
}

func (r *EstimateRenderer) addTableRow(m core.Maroto, index int, name, qty, unit, rate, total string) {
	cellText := props.Text{Size: 8, Align: align.Center}
	cellTextLeft := props.Text{Size: 8, Align: align.Left}

	var rowStyle *props.Cell
	if index%2 == 1 {
		rowStyle = &props.Cell{BackgroundColor: &props.Color{Red: 245, Green: 245, Blue: 245}}
	}

	cols := []core.Col{
		col.New(5).Add(text.New(name, cellTextLeft)),
		col.New(2).Add(text.New(qty, cellText)),
		col.New(1).Add(text.New(unit, cellText)),
		col.New(2).Add(text.New(rate, cellText)),
		col.New(2).Add(text.New(total, cellText)),
	}
	if rowStyle != nil {
		for i := range cols {
			cols[i] = cols[i].WithStyle(rowStyle)
		}
	}

	m.AddRows(row.New(6).Add(cols...))
}

func (r *EstimateRenderer) addSummary(m core.Maroto, e *domain.Estimate, totals costing.Totals) {
	r.addSectionTitle(m, "Summary")

	summaryRow := func(label, value string, bold bool) {
		style := fontstyle.Normal
		size := 9.0
		if bold {
			style = fontstyle.Bold
			size = 11
		}
		m.AddRows(
			row.New(6).Add(
				col.New(8).Add(
					text.New(label, props.Text{Size: size, Style: style, Align: align.Right}),
				),
				col.New(4).Add(
					text.New(value, props.Text{Size: size, Style: style, Align: align.Right}),
				),
			),
		)
	}

	summaryRow("Materials", fmt.Sprintf("$%.2f", totals.MaterialTotal), false)
	summaryRow("Labor", fmt.Sprintf("$%.2f", totals.LaborTotal), false)
	summaryRow("Subtotal", fmt.Sprintf("$%.2f", totals.Subtotal), false)
	summaryRow(fmt.Sprintf("Profit Margin (%.0f%%)", e.ProfitMargin), fmt.Sprintf("$%.2f", totals.ProfitAmount), false)
	summaryRow("Total", fmt.Sprintf("$%.2f", totals.Total), true)
}
