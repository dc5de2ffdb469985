package models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

// Deleting a template must take its fields, assignments, field values and
// versions with it at the database level, so every relation in that ownership
// chain has to carry ON DELETE CASCADE.
func TestRelationConstraintsCascadeOnDelete(t *testing.T) {
	cases := []struct {
		model    interface{}
		relation string
	}{
		{&Template{}, "Fields"},
		{&Assignment{}, "Template"},
		{&Assignment{}, "FieldValues"},
		{&Assignment{}, "Versions"},
		{&FieldValue{}, "Field"},
	}

	cache := &sync.Map{}
	for _, c := range cases {
		s, err := schema.Parse(c.model, cache, schema.NamingStrategy{})
		require.NoError(t, err)

		rel, ok := s.Relationships.Relations[c.relation]
		require.True(t, ok, "%s.%s not a relation", s.Name, c.relation)

		constraint := rel.ParseConstraint()
		require.NotNil(t, constraint, "%s.%s has no foreign key constraint", s.Name, c.relation)
		require.Equal(t, "CASCADE", constraint.OnDelete, "%s.%s", s.Name, c.relation)
	}
}
