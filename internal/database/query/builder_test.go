// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

package query

import (
	"reflect"
	"testing"
)

func strPtr(s string) *string { return &s }
func intPtr(i int64) *int64   { return &i }

func TestWhereBuilder_Empty(t *testing.T) {
	wb := NewWhereBuilder()

	if !wb.IsEmpty() {
		t.Error("Expected new builder to be empty")
	}
	if wb.Count() != 0 {
		t.Errorf("Expected count 0, got %d", wb.Count())
	}
	if where := wb.Where(); where != "" {
		t.Errorf("Expected empty WHERE, got %q", where)
	}
	if and := wb.And(); and != "" {
		t.Errorf("Expected empty AND, got %q", and)
	}

	clause, args := wb.Build()
	if clause != "1=1" {
		t.Errorf("Expected '1=1' for empty builder, got %q", clause)
	}
	if len(args) != 0 {
		t.Errorf("Expected 0 args, got %d", len(args))
	}
}

func TestWhereBuilder_SkipsAbsentCriteria(t *testing.T) {
	wb := NewWhereBuilder()
	wb.AddInt("d.id_canal = ?", nil)
	wb.AddString("c.datah >= ?", nil)
	wb.AddString("c.datah <= ?", strPtr(""))
	wb.Add(false, "x = ?", 1)

	if !wb.IsEmpty() {
		t.Errorf("Expected no fragments, got %v", wb.Fragments())
	}
	if len(wb.Args()) != 0 {
		t.Errorf("Expected no args, got %v", wb.Args())
	}
}

func TestWhereBuilder_PositionalNumbering(t *testing.T) {
	tests := []struct {
		name      string
		build     func(wb *WhereBuilder)
		wantWhere string
		wantArgs  []interface{}
	}{
		{
			name: "channel only",
			build: func(wb *WhereBuilder) {
				wb.AddInt("d.id_canal = ?", intPtr(7))
				wb.AddRange("c.datah", nil, nil)
			},
			wantWhere: "WHERE d.id_canal = $1",
			wantArgs:  []interface{}{int64(7)},
		},
		{
			name: "channel and full range",
			build: func(wb *WhereBuilder) {
				wb.AddInt("d.id_canal = ?", intPtr(3))
				wb.AddRange("c.datah", strPtr("2024-01-01"), strPtr("2024-01-31"))
			},
			wantWhere: "WHERE d.id_canal = $1 AND c.datah >= $2 AND c.datah <= $3",
			wantArgs:  []interface{}{int64(3), "2024-01-01", "2024-01-31"},
		},
		{
			name: "end date only",
			build: func(wb *WhereBuilder) {
				wb.AddInt("v.id_canal = ?", nil)
				wb.AddRange("v.datah", nil, strPtr("2024-06-30"))
			},
			wantWhere: "WHERE v.datah <= $1",
			wantArgs:  []interface{}{"2024-06-30"},
		},
		{
			name: "base clause before optional criteria",
			build: func(wb *WhereBuilder) {
				wb.AddClause("d.status IN ('lido', 'recebido')")
				wb.AddInt("d.id_video = ?", intPtr(9))
			},
			wantWhere: "WHERE d.status IN ('lido', 'recebido') AND d.id_video = $1",
			wantArgs:  []interface{}{int64(9)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wb := NewWhereBuilder()
			tt.build(wb)

			if got := wb.Where(); got != tt.wantWhere {
				t.Errorf("Where() = %q, want %q", got, tt.wantWhere)
			}
			if got := wb.Args(); !reflect.DeepEqual(got, tt.wantArgs) {
				t.Errorf("Args() = %v, want %v", got, tt.wantArgs)
			}
		})
	}
}

func TestWhereBuilder_DeclarationOrderIsBindingOrder(t *testing.T) {
	a := NewWhereBuilder()
	a.AddString("x = ?", strPtr("first"))
	a.AddString("y = ?", strPtr("second"))

	b := NewWhereBuilder()
	b.AddString("y = ?", strPtr("second"))
	b.AddString("x = ?", strPtr("first"))

	if a.Where() == b.Where() {
		t.Fatal("Expected different clauses for different declaration order")
	}
	if a.Where() != "WHERE x = $1 AND y = $2" {
		t.Errorf("unexpected clause %q", a.Where())
	}
	if a.Args()[0] != "first" || b.Args()[0] != "second" {
		t.Errorf("args not bound in declaration order: %v / %v", a.Args(), b.Args())
	}
}

func TestWhereBuilder_AddSearch(t *testing.T) {
	t.Run("single column", func(t *testing.T) {
		wb := NewWhereBuilder()
		wb.AddSearch("gam", "nome")
		if got := wb.Where(); got != "WHERE nome ILIKE $1" {
			t.Errorf("got %q", got)
		}
		if got := wb.Args(); !reflect.DeepEqual(got, []interface{}{"%gam%"}) {
			t.Errorf("got args %v", got)
		}
	})

	t.Run("two columns are one fragment", func(t *testing.T) {
		wb := NewWhereBuilder()
		wb.AddSearch("ana", "nick", "email")
		if wb.Count() != 1 {
			t.Errorf("Expected 1 fragment, got %d", wb.Count())
		}
		if got := wb.Where(); got != "WHERE (nick ILIKE $1 OR email ILIKE $2)" {
			t.Errorf("got %q", got)
		}
		if len(wb.Args()) != 2 {
			t.Errorf("Expected 2 args, got %d", len(wb.Args()))
		}
	})

	t.Run("empty term is skipped", func(t *testing.T) {
		wb := NewWhereBuilder()
		wb.AddSearch("", "nome")
		if !wb.IsEmpty() {
			t.Error("Expected empty builder")
		}
	})
}

func TestWhereBuilder_Trailing(t *testing.T) {
	wb := NewWhereBuilder()
	wb.AddSearch("x", "u.nick", "v.titulo")

	ph, args := wb.Trailing(10, 20)
	if !reflect.DeepEqual(ph, []string{"$3", "$4"}) {
		t.Errorf("placeholders = %v", ph)
	}
	want := []interface{}{"%x%", "%x%", 10, 20}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("args = %v, want %v", args, want)
	}

	// Trailing must not mutate the builder so the count query sees only filter args.
	if len(wb.Args()) != 2 {
		t.Errorf("builder args mutated: %v", wb.Args())
	}

	empty := NewWhereBuilder()
	ph, args = empty.Trailing(5)
	if ph[0] != "$1" || len(args) != 1 {
		t.Errorf("empty builder trailing = %v %v", ph, args)
	}
}

func TestWhereBuilder_And(t *testing.T) {
	wb := NewWhereBuilder()
	wb.AddInt("v.id_canal = ?", intPtr(2))
	if got := wb.And(); got != " AND v.id_canal = $1" {
		t.Errorf("And() = %q", got)
	}
}
