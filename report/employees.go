package report

import (
	"context"
	"fmt"
	"strings"

	"teatr_manager/model"

	"github.com/shopspring/decimal"
)

const (
	employeesHeading     = "Employee organizational structure"
	EmployeesPlaceholder = "No employees match the hiring and salary criteria."
	ManagerialPosition   = "MANAGERIAL POSITION"
)

const (
	bandX        = 50
	bandWidth    = 500
	bandHeight   = 25
	bandAfter    = 45
	entryX       = 70
	entryDetailY = 14
	entryAfter   = 40
)

var (
	deptStyle     = TextStyle{Size: 14, Color: DarkGray}
	nameStyle     = TextStyle{Size: 12, Color: Black}
	employeeStyle = TextStyle{Size: 10, Color: MidGray}
)

func (g *Generator) renderEmployees(ctx context.Context, doc *Document, f Filter) (Summary, error) {
	doc.Write(employeesHeading, headingStyle)
	doc.MoveDown(1)

	rows, err := g.source.EmployeesHierarchy(ctx, f)
	if err != nil {
		return Summary{}, err
	}
	if len(rows) == 0 {
		doc.Write(EmployeesPlaceholder, bodyStyle)
	}

	c := doc.Canvas()
	cur := doc.Cursor()
	total := decimal.Zero
	for _, dept := range GroupAdjacent(rows, func(r model.EmployeeRow) string { return r.Dept }) {
		for i, e := range dept.Items {
			// the first entry of a department also carries its header band
			need := g.layout.EmployeeMinRoom
			if i == 0 {
				need += doc.LastLineHeight() + bandAfter
			}
			doc.EnsureRoom(need)

			if i == 0 {
				doc.MoveDown(1)
				y := cur.Y
				c.Rect(bandX, y, bandWidth, bandHeight, filledStroked(BandGray, BandGray))
				c.Text(bandX+10, y+7, 0, strings.ToUpper(dept.Key), deptStyle, AlignLeft)
				cur.MoveTo(y + bandAfter)
			}

			y := cur.Y
			c.Circle(entryX-10, y+6, 2, Black)
			c.Text(entryX, y, 0, e.FirstName+" "+e.LastName, nameStyle, AlignLeft)
			c.Text(entryX, y+entryDetailY, 0, EmployeeDetails(e), employeeStyle, AlignLeft)
			cur.MoveTo(y + entryAfter)

			total = total.Add(e.Salary)
		}
	}
	return Summary{Rows: len(rows), Total: total}, nil
}

// EmployeeDetails is the gray line under an employee name.
func EmployeeDetails(e model.EmployeeRow) string {
	manager := ManagerialPosition
	if e.ManagerName != nil && *e.ManagerName != "" {
		manager = "Manager: " + *e.ManagerName
	}
	return fmt.Sprintf("Hired: %s | Salary: %s PLN | %s",
		e.HireDate.Format("2006-01-02"), e.Salary.StringFixed(2), manager)
}
