// Package ui runs the interactive menu loop. It is a synchronous,
// line-oriented state machine: every action runs to completion on the
// calling goroutine before the next prompt.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"kakeibo/internal/core"
	"kakeibo/internal/ledger"
	"kakeibo/internal/log"
	"kakeibo/internal/render"
)

type state int

const (
	stateMenu state = iota
	stateAdd
	stateTable
	stateChart
	stateExport
	stateExit
)

// Exporter is the port to the spreadsheet writer.
type Exporter interface {
	Export(records []core.Transaction) (int, error)
	Path() string
}

// Loop dispatches menu selections against a single ledger instance.
type Loop struct {
	in       *bufio.Scanner
	out      io.Writer
	ledger   *ledger.Ledger
	exporter Exporter
	logger   *log.Logger
}

func New(in io.Reader, out io.Writer, l *ledger.Ledger, exporter Exporter, logger *log.Logger) *Loop {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &Loop{
		in:       bufio.NewScanner(in),
		out:      out,
		ledger:   l,
		exporter: exporter,
		logger:   logger.WithComponent("ui"),
	}
}

// Run drives the state machine until the user selects 終了 or input
// reaches EOF. Both paths perform the final full save.
func (l *Loop) Run() error {
	st := stateMenu
	for st != stateExit {
		var err error
		switch st {
		case stateMenu:
			st, err = l.menu()
		case stateAdd:
			st, err = l.addFlow()
		case stateTable:
			render.Table(l.out, l.ledger.Records())
			st = stateMenu
		case stateChart:
			render.BarChart(l.out, l.ledger.Totals())
			st = stateMenu
		case stateExport:
			l.exportSpreadsheet()
			st = stateMenu
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				l.logger.Info("Input closed, shutting down")
				st = stateExit
				continue
			}
			return err
		}
	}

	fmt.Fprintln(l.out, "アプリを終了します")
	return l.ledger.Close()
}

func (l *Loop) menu() (state, error) {
	fmt.Fprintln(l.out, "\n1.収支を登録する")
	fmt.Fprintln(l.out, "2.家計簿を表示する")
	fmt.Fprintln(l.out, "3.グラフを表示する")
	fmt.Fprintln(l.out, "4.エクセルに保存する")
	fmt.Fprintln(l.out, "5.終了")

	choice, err := l.readLine("メニューを選択してください(例:1,2,3)")
	if err != nil {
		return stateExit, err
	}

	switch strings.TrimSpace(choice) {
	case "1":
		return stateAdd, nil
	case "2":
		return stateTable, nil
	case "3":
		return stateChart, nil
	case "4":
		return stateExport, nil
	case "5":
		return stateExit, nil
	default:
		fmt.Fprintln(l.out, "入力する数値が間違っています。メニュー番号を入力してください。")
		return stateMenu, nil
	}
}

// addFlow prompts for the three fields, each re-prompting until valid,
// then appends the record and persists the full ledger.
func (l *Loop) addFlow() (state, error) {
	date, err := l.promptDate()
	if err != nil {
		return stateExit, err
	}
	category, err := l.promptCategory()
	if err != nil {
		return stateExit, err
	}
	amount, err := l.promptAmount()
	if err != nil {
		return stateExit, err
	}

	tx := core.Transaction{Date: date, Category: category, Amount: amount}
	if err := l.ledger.Add(tx); err != nil {
		// The record stays in memory; a later save can still persist it.
		l.logger.Error("Failed to persist ledger", "error", err)
		fmt.Fprintf(l.out, "家計簿の保存中にエラーが発生しました。:%v\n", err)
		return stateMenu, nil
	}

	fmt.Fprintln(l.out, "収支を登録しました")
	return stateMenu, nil
}

func (l *Loop) promptDate() (core.Date, error) {
	for {
		text, err := l.readLine("日付の入力(例:2025/01/01):")
		if err != nil {
			return core.Date{}, err
		}
		date, err := core.ParseDate(text)
		if err != nil {
			fmt.Fprintln(l.out, "日付はYYYY/MM/DDの形で入力してください")
			continue
		}
		return date, nil
	}
}

func (l *Loop) promptCategory() (core.Category, error) {
	categories := core.Categories()
	fmt.Fprintln(l.out, "カテゴリを選択してください:")
	for i, cat := range categories {
		fmt.Fprintf(l.out, "%d. %s\n", i+1, cat)
	}
	for {
		text, err := l.readLine("番号を入力してください:")
		if err != nil {
			return "", err
		}
		category, err := core.SelectCategory(text, categories)
		switch {
		case errors.Is(err, core.ErrNotANumber):
			fmt.Fprintln(l.out, "数字で入力してください。")
		case errors.Is(err, core.ErrCategoryOutOfRange):
			fmt.Fprintln(l.out, "番号が無効です。もう一度入力してください。")
		default:
			return category, nil
		}
	}
}

func (l *Loop) promptAmount() (core.Money, error) {
	for {
		text, err := l.readLine("金額を入力してください:")
		if err != nil {
			return core.Money{}, err
		}
		amount, err := core.ParseAmount(text)
		if err != nil {
			fmt.Fprintln(l.out, "金額は数字で入力してください。")
			continue
		}
		return amount, nil
	}
}

// exportSpreadsheet writes the ledger to the workbook. Failures are
// reported and swallowed here; the loop and the in-memory ledger
// continue untouched.
func (l *Loop) exportSpreadsheet() {
	count, err := l.exporter.Export(l.ledger.Records())
	if err != nil {
		l.logger.Error("Spreadsheet export failed", "error", err)
		fmt.Fprintf(l.out, "エクセルへ保存中にエラーが発生しました。:%v\n", err)
		return
	}
	fmt.Fprintf(l.out, "データをExcelファイル(%s)に保存しました。\n", l.exporter.Path())
	fmt.Fprintf(l.out, "データは%d件です。\n", count)
}

// readLine prints the prompt on its own line and returns the next input
// line. io.EOF means the input source is gone for good.
func (l *Loop) readLine(prompt string) (string, error) {
	fmt.Fprintln(l.out, prompt)
	if !l.in.Scan() {
		if err := l.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return l.in.Text(), nil
}
