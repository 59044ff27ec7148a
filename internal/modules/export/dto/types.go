package dto

type ExportOutput struct {
	Name      string
	Path      string
	TaskCount int
}
