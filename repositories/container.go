package repositories

type Repos struct {
	User       UserRepo
	Template   TemplateRepo
	Field      FieldRepo
	Assignment AssignmentRepo
	FieldValue FieldValueRepo
	Version    VersionRepo
}

func New() *Repos {
	return &Repos{
		User:       &DBUserRepo{},
		Template:   &DBTemplateRepo{},
		Field:      &DBFieldRepo{},
		Assignment: &DBAssignmentRepo{},
		FieldValue: &DBFieldValueRepo{},
		Version:    &DBVersionRepo{},
	}
}
