package store

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"entgo.io/ent"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"

	entschema "github.com/abhisek/touchline/ent/schema"
)

// Table names.
const (
	tableAssessmentEvents = "assessment_events"
	tableAnswerEvents     = "answer_events"
	tableBadgeEvents      = "badge_events"
	tableLLMEvents        = "llm_request_events"
	tableSnapshots        = "snapshots"
)

var entities = []struct {
	table  string
	schema ent.Interface
}{
	{tableAssessmentEvents, entschema.AssessmentEvent{}},
	{tableAnswerEvents, entschema.AnswerEvent{}},
	{tableBadgeEvents, entschema.BadgeEvent{}},
	{tableLLMEvents, entschema.LLMRequestEvent{}},
	{tableSnapshots, entschema.Snapshot{}},
}

// Tables returns the migration tables derived from the ent schema
// definitions.
func Tables() []*schema.Table {
	out := make([]*schema.Table, len(entities))
	for i, e := range entities {
		out[i] = tableOf(e.table, e.schema)
	}
	return out
}

// tableOf lays out a table the way ent's code generator does: an
// auto-increment id, mixin fields, then the schema's own fields.
func tableOf(name string, s ent.Interface) *schema.Table {
	var (
		fields  []ent.Field
		indexes []ent.Index
	)
	for _, m := range s.Mixin() {
		fields = append(fields, m.Fields()...)
		indexes = append(indexes, m.Indexes()...)
	}
	fields = append(fields, s.Fields()...)
	indexes = append(indexes, s.Indexes()...)

	id := &schema.Column{Name: "id", Type: field.TypeInt, Increment: true}
	t := &schema.Table{
		Name:       name,
		Columns:    []*schema.Column{id},
		PrimaryKey: []*schema.Column{id},
	}
	byName := map[string]*schema.Column{"id": id}

	for _, f := range fields {
		d := f.Descriptor()
		col := &schema.Column{
			Name:     d.Name,
			Type:     d.Info.Type,
			Unique:   d.Unique,
			Nullable: d.Optional,
			Size:     int64(d.Size),
		}
		// Function defaults such as time.Now are applied on insert.
		if d.Default != nil && reflect.TypeOf(d.Default).Kind() != reflect.Func {
			col.Default = d.Default
		}
		t.Columns = append(t.Columns, col)
		byName[d.Name] = col
	}

	prefix := strings.ToLower(reflect.TypeOf(s).Name())
	for _, ix := range indexes {
		d := ix.Descriptor()
		cols := make([]*schema.Column, 0, len(d.Fields))
		for _, f := range d.Fields {
			cols = append(cols, byName[f])
		}
		t.Indexes = append(t.Indexes, &schema.Index{
			Name:    prefix + "_" + strings.Join(d.Fields, "_"),
			Unique:  d.Unique,
			Columns: cols,
		})
	}
	return t
}

// migrate creates or updates every table.
func migrate(ctx context.Context, drv *entsql.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	if err := m.Create(ctx, Tables()...); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}
