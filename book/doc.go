// Package book contains the Book entity.
//
// A Book only holds data. Everything that can be done with a book (displaying,
// printing, serializing) lives in its own capability package and receives the
// Book as a plain value, so no capability can change it.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer.
package book
