package book

// Book is the single entity all capabilities operate on.
type Book struct {
	Title   string
	Content string
}

// BuildBook creates a new Book.
func BuildBook(title string, content string) Book {
	return Book{
		Title:   title,
		Content: content,
	}
}
