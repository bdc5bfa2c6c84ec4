package model

// Path represents a file system path.
type Path string

// File represents a Python source file selected for interrogation.
type File struct {
	FullPath  Path
	ShortPath Path // relative to the common base of the run, used for display
}

