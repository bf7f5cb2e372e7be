package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/hanoisim/internal/hanoi"
)

type MoveRecord struct {
	Step int `json:"step"`
	Disk int `json:"disk"`
	From int `json:"from"`
	To   int `json:"to"`
}

type ExportData struct {
	Disks int          `json:"disks"`
	Total int          `json:"total"`
	Moves []MoveRecord `json:"moves"`
}

func Records(n int, moves []hanoi.Move) ([]MoveRecord, error) {
	disks, err := hanoi.DiskAt(n, moves)
	if err != nil {
		return nil, err
	}
	records := make([]MoveRecord, len(moves))
	for i, m := range moves {
		records[i] = MoveRecord{Step: i + 1, Disk: disks[i], From: m.From, To: m.To}
	}
	return records, nil
}

func WriteCSV(w io.Writer, n int, moves []hanoi.Move) error {
	records, err := Records(n, moves)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"step", "disk", "from", "to"}); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Step),
			strconv.Itoa(r.Disk),
			strconv.Itoa(r.From),
			strconv.Itoa(r.To),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteJSON(w io.Writer, n int, moves []hanoi.Move) error {
	records, err := Records(n, moves)
	if err != nil {
		return err
	}
	data := ExportData{
		Disks: n,
		Total: len(moves),
		Moves: records,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// ToFile writes moves in the given format ("csv" or "json") to path, or to
// stdout when path is empty or "-".
func ToFile(path, format string, n int, moves []hanoi.Move) error {
	var write func(io.Writer, int, []hanoi.Move) error
	switch format {
	case "csv":
		write = WriteCSV
	case "json":
		write = WriteJSON
	default:
		return fmt.Errorf("unknown export format: %s", format)
	}

	if path == "" || path == "-" {
		return write(os.Stdout, n, moves)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(file, n, moves); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
