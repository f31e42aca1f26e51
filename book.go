package booknav

import (
	"encoding/json"
	"fmt"
	"os"
)

// Book identifies one book module of the site.
type Book struct {
	Name     string `json:"name"`     //unique slug, also the content directory name
	RootPath string `json:"rootPath"` //URL-space prefix, e.g. "/09-router-source/"
	Title    string `json:"title"`    //display label of the book's navigation root
	Group    string `json:"group"`    //display category for top-level menus
}

// LoadBooks reads the ordered book list from a JSON configuration file. The
// order is significant: navigation assembly and duplicate root path
// resolution follow it.
func LoadBooks(path string) ([]Book, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, newCompileError("reading book configuration failed", err)
	}
	var books []Book
	if err := json.Unmarshal(raw, &books); err != nil {
		return nil, newCompileError("parsing book configuration failed", err)
	}
	for i, book := range books {
		if book.Name == "" || book.RootPath == "" || book.Title == "" || book.Group == "" {
			return nil, newCompileError(fmt.Sprintf("book #%d is missing a required field (name/rootPath/title/group)", i+1), nil)
		}
	}
	return books, nil
}
