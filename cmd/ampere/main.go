package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"Ampere/internal/calc/premium/batch"
	"Ampere/internal/calc/premium/importer"
	"Ampere/internal/calc/report"
	"Ampere/internal/calc/sizing"

	"github.com/joho/godotenv"
)

func main() {
	chainPath := flag.String("chain", "", "JSON file with the tiers of one supply chain")
	sheetPath := flag.String("import", "", "xlsx circuits sheet evaluated as a batch")
	pdfPath := flag.String("pdf", "", "write a PDF report of the chain")
	xlsxPath := flag.String("xlsx", "", "write a workbook of the chain")
	asJSON := flag.Bool("json", false, "print full results as JSON")
	flag.Parse()

	_ = godotenv.Load()
	log.SetFlags(0)

	switch {
	case *chainPath != "":
		in, err := readChain(*chainPath)
		if err != nil {
			log.Fatal(err)
		}
		doc, err := report.Build(in)
		if err != nil {
			log.Fatal(err)
		}
		if *asJSON {
			printJSON(doc.Results)
		} else {
			printChain(os.Stdout, doc)
		}
		if *pdfPath != "" {
			if err := writeFile(*pdfPath, doc.PDF); err != nil {
				log.Fatal(err)
			}
		}
		if *xlsxPath != "" {
			f, err := doc.Workbook()
			if err != nil {
				log.Fatal(err)
			}
			if err := f.SaveAs(*xlsxPath); err != nil {
				log.Fatal(err)
			}
		}
	case *sheetPath != "":
		res, rowErrs, err := runSheet(*sheetPath)
		if err != nil {
			log.Fatal(err)
		}
		for _, re := range rowErrs {
			log.Printf("row %d: %s", re.Row, re.Error)
		}
		if *asJSON {
			printJSON(res)
		} else {
			printBatch(os.Stdout, res)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

// readChain accepts either {"tiers": [...]} with report metadata or a bare
// array of circuits.
func readChain(path string) (report.Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return report.Input{}, err
	}
	var in report.Input
	if err := json.Unmarshal(data, &in); err == nil && len(in.Tiers) > 0 {
		return in, nil
	}
	var tiers []sizing.Circuit
	if err := json.Unmarshal(data, &tiers); err != nil {
		return report.Input{}, fmt.Errorf("%s: %w", path, err)
	}
	return report.Input{Tiers: tiers}, nil
}

func runSheet(path string) (batch.Result, []importer.RowError, error) {
	f, err := os.Open(path)
	if err != nil {
		return batch.Result{}, nil, err
	}
	defer f.Close()
	circuits, rowErrs, err := importer.Parse(f)
	if err != nil {
		return batch.Result{}, nil, err
	}
	res, err := batch.Evaluate(context.Background(), batch.Input{Items: circuits})
	return res, rowErrs, err
}

func writeFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatal(err)
	}
}

func printChain(w io.Writer, doc *report.Document) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tSELECTION\tSIZE\tDEVICE\tIK,MIN\tΔU %\tOK")
	for i, r := range doc.Results {
		if r.Outcome == nil {
			fmt.Fprintf(tw, "%d\t%s\t-\t-\t-\t-\t-\t%s\n", i+1, doc.Tiers[i].Name, r.Error)
			continue
		}
		printOutcome(tw, i+1, r.Outcome)
	}
	tw.Flush()
}

func printBatch(w io.Writer, res batch.Result) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tSELECTION\tSIZE\tDEVICE\tIK,MIN\tΔU %\tOK")
	for _, it := range res.Items {
		if it.Outcome == nil {
			fmt.Fprintf(tw, "%d\t%s\t-\t-\t-\t-\t-\t%s\n", it.Index+1, it.Name, it.Error)
			continue
		}
		printOutcome(tw, it.Index+1, it.Outcome)
	}
	tw.Flush()
	fmt.Fprintf(w, "%d circuits, %d compliant, %d failed\n", res.Count, res.Compliant, res.Failed)
}

func printOutcome(w io.Writer, n int, o *sizing.Outcome) {
	ik := "-"
	if o.IkMin != nil {
		ik = fmt.Sprintf("%.0f A", o.IkMin.Magnitude)
	}
	size := "-"
	if o.Found() {
		size = fmt.Sprintf("%g mm²", o.SizeMM2)
		if o.Parallel > 1 {
			size = fmt.Sprintf("%d×%g mm²", o.Parallel, o.SizeMM2)
		}
	}
	fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%.2f\t%t\n",
		n, o.Name, o.Selection, size, o.Device, ik, o.Drop.Percent, o.Compliant)
}
