package mappers

// optionalString maps "" to NULL so unique indexes ignore unset gateway ids.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
