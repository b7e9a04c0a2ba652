package dto

type RenderOutput struct {
	Format  string
	Content string
}

type ValidateOutput struct {
	Path     string
	Name     string
	Version  string
	Problems []string
}
