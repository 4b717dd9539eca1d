package book

// DefaultSeed is the list a new catalog starts with
func DefaultSeed() []Book {
	return []Book{
		{ID: 1, Title: "The Pragmatic Programmer", Author: "Dave Thomas", Category: Technology, Status: Completed},
		{ID: 2, Title: "Clean Code", Author: "Robert C. Martin", Category: Technology, Status: Reading},
		{ID: 3, Title: "Design Patterns", Author: "Erich Gamma", Category: Technology, Status: Unread},
	}
}
