package pipeline

import (
	"context"
	"fmt"
	"io"
	"log"

	"icon-scraper/internal/extract"
	"icon-scraper/internal/output"
	"icon-scraper/internal/source"
)

// Job describes one read → extract → [dedupe] → sort → write pass
type Job struct {
	Source   source.Source
	Strategy extract.Strategy
	// Unique dedupes tokens before writing. LinePrefix output is always
	// unique already.
	Unique bool

	OutputDir string
	Origin    string
	Sorted    string
	JSON      string // Empty disables JSON output
	FontName  string

	// WriteEmpty writes output files even when nothing was extracted
	WriteEmpty bool

	// Progress receives "✓ Saved" lines; nil discards them
	Progress io.Writer
}

// Outcome is what a Job produced
type Outcome struct {
	Icons        extract.Set
	Sorted       extract.Set
	UsedFallback bool
	// LoadErr is set when the page could not be loaded; Icons is then empty
	LoadErr   error
	Written   []string
	WriteErrs []error
}

// Run executes the job. Load failures yield an empty set with nothing written
// (remote ones are also logged); write failures are logged and the remaining files are
// still written.
func Run(ctx context.Context, job Job) *Outcome {
	progress := job.Progress
	if progress == nil {
		progress = io.Discard
	}

	out := &Outcome{Icons: extract.Set{}, Sorted: extract.Set{}}

	content, err := job.Source.Load(ctx)
	if err != nil {
		// Local read failures are returned to the caller, which reports them.
		if _, local := job.Source.(*source.FileSource); !local {
			log.Printf("Error scraping icons: %v", err)
		}
		out.LoadErr = err
	} else {
		res, err := extract.ExtractDocument(job.Strategy, content)
		if err != nil {
			log.Printf("Error parsing %s: %v", job.Source.Describe(), err)
		}
		out.Icons = res.Icons
		out.UsedFallback = res.UsedFallback
	}

	if job.Unique {
		out.Icons = out.Icons.Unique()
	}
	out.Sorted = out.Icons.Sorted()

	if out.LoadErr != nil || (len(out.Icons) == 0 && !job.WriteEmpty) {
		return out
	}

	out.writeText(progress, output.Resolve(job.OutputDir, job.Origin), out.Icons)
	out.writeText(progress, output.Resolve(job.OutputDir, job.Sorted), out.Sorted)
	if job.JSON != "" {
		path := output.Resolve(job.OutputDir, job.JSON)
		if err := output.WriteJSON(path, job.FontName, out.Icons); err != nil {
			log.Printf("Error saving JSON: %v", err)
			out.WriteErrs = append(out.WriteErrs, err)
		} else {
			fmt.Fprintf(progress, "✓ Saved as JSON to %s\n", path)
			out.Written = append(out.Written, path)
		}
	}

	return out
}

func (o *Outcome) writeText(progress io.Writer, path string, icons extract.Set) {
	if path == "" {
		return
	}
	if err := output.WriteText(path, icons); err != nil {
		log.Printf("Error saving to file: %v", err)
		o.WriteErrs = append(o.WriteErrs, err)
		return
	}
	fmt.Fprintf(progress, "✓ Saved %d icons to %s\n", len(icons), path)
	o.Written = append(o.Written, path)
}
