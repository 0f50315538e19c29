package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/oneconcern/commonfiles/pkg/model"
	"github.com/oneconcern/commonfiles/pkg/resolver"
	"gopkg.in/yaml.v2"
)

// Formatter renders some command output
type Formatter interface {
	Format(io.Writer, interface{}) error
}

// FormatterFunc is a function usable as a Formatter
type FormatterFunc func(io.Writer, interface{}) error

// Format data to w
func (f FormatterFunc) Format(w io.Writer, data interface{}) error {
	return f(w, data)
}

func formatterNames(formatters map[string]Formatter) string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

var yamlFormatter = FormatterFunc(func(w io.Writer, data interface{}) error {
	b, err := yaml.Marshal(data)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
})

var resultsListFormatter = FormatterFunc(func(w io.Writer, data interface{}) error {
	results := data.([]resolver.GroupResult)
	for _, result := range results {
		if _, err := fmt.Fprintf(w, "%s\n", color.CyanString(result.MD5)); err != nil {
			return err
		}
		for _, instance := range result.Instances {
			if _, err := fmt.Fprintln(w, formatInstance(instance)); err != nil {
				return err
			}
		}
		if result.Skipped > 0 {
			if _, err := fmt.Fprintf(w, "\t%s\n", color.RedString("%d skipped", result.Skipped)); err != nil {
				return err
			}
		}
	}
	return nil
})

func formatInstance(instance model.ResolvedInstance) string {
	switch instance.Kind {
	case model.KindLocal:
		return fmt.Sprintf("\t%s\t%v\t%s", color.GreenString(instance.Kind.String()), instance.ID, instance.Label)
	default:
		pth := ""
		if instance.Instance != nil {
			pth = instance.Instance.FilePath
		}
		return fmt.Sprintf("\t%s\t%v\t%s\t%s", color.YellowString(instance.Kind.String()), instance.ID, instance.Label, color.HiBlackString(pth))
	}
}
