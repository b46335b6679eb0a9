// Package export renders the payment history as CSV. encoding/csv
// supplies the required quoting: fields containing the delimiter, a
// quote, or a newline are wrapped in quotes with embedded quotes doubled.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fairshare-dev/fairshare/internal/model"
)

// Header is the CSV header row for an expense export.
const Header = "Payment ID,Date,Payer,Amount,Purpose,Category,Involved Users"

const (
	numFields   = 7
	colID       = 0
	colDate     = 1
	colPayer    = 2
	colAmount   = 3
	colPurpose  = 4
	colCategory = 5
	colInvolved = 6
)

// WriteCSV writes the header and one row per payment.
func WriteCSV(w io.Writer, payments []model.Payment) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, p := range payments {
		if err := cw.Write(MarshalPayment(p)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalPayment converts a Payment to a CSV row ([]string).
func MarshalPayment(p model.Payment) []string {
	row := make([]string, numFields)
	row[colID] = strconv.Itoa(p.ID)
	row[colDate] = p.Date.Format(model.DateFormat)
	row[colPayer] = p.PayerName
	row[colAmount] = p.Amount.StringFixed(2)
	row[colPurpose] = p.Purpose
	row[colCategory] = string(p.Category)
	row[colInvolved] = strings.Join(p.InvolvedNames, "; ")
	return row
}
