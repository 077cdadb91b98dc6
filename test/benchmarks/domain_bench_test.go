// test/benchmarks/domain_bench_test.go
package benchmarks

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ammerola/stowage/internal/core/domain"
)

func BenchmarkParseImportRows(b *testing.B) {
	sizes := []int{10, 100, 1000}

	for _, size := range sizes {
		records, err := csv.NewReader(bytes.NewReader(createIntakeCSV(size))).ReadAll()
		if err != nil {
			b.Fatal(err)
		}

		b.Run(fmt.Sprintf("Rows_%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				header, err := domain.ParseImportHeader(records[0])
				if err != nil {
					b.Fatal(err)
				}
				for line, record := range records[1:] {
					row, err := header.ParseImportRow(line+2, record)
					if err != nil {
						continue
					}
					_ = row.ContainerCode(domain.ImportOptions{PadDigits: 2})
					_ = row.Items(domain.ImportOptions{ExpandQuantity: true})
				}
			}
		})
	}
}

func BenchmarkParseContainerName(b *testing.B) {
	labels := []string{"Bin #1", "Tote #042", "Crate #7", "Hall closet shelf", "  Box #12  "}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		name := domain.ParseContainerName(labels[i%len(labels)])
		_ = name.PaddedCode(3)
	}
}

func BenchmarkMatchContainerType(b *testing.B) {
	types := domain.StandardContainerTypes()
	legacy := []string{"Tote", "storage bin", "BIN", "milk crate", "unknown thing"}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = domain.MatchContainerType(legacy[i%len(legacy)], "BIN-01", types)
	}
}

func BenchmarkBuildFillReport(b *testing.B) {
	capacity := decimal.NewFromInt(500)

	for _, size := range []int{10, 100, 1000} {
		items := createFillItems(size)
		b.Run(fmt.Sprintf("Items_%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = domain.BuildFillReport(items, &capacity)
			}
		})
	}
}
