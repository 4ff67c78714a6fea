package models

// PathsEntry is one declared alias from compilerOptions.paths, in declaration
// order. Targets holds only the string members of the declared array;
// everything else has already been filtered out.
type PathsEntry struct {
	Alias   string
	Targets []string
}

// ProjectConfig is the parsed, relevant subset of a tsconfig.json or
// jsconfig.json file together with the directory it was found in.
type ProjectConfig struct {
	Path    string // absolute path of the config file
	Dir     string // directory containing the config file
	BaseURL string // compilerOptions.baseUrl as declared, "" when absent
	HasBase bool   // whether compilerOptions.baseUrl was a string
	Paths   []PathsEntry
}
