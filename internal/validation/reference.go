package validation

import "github.com/mrlokans/libman/internal/entities"

// Reference tables only require a name; descriptive fields pass through
// untouched.

type GenreInput struct {
	Name Scalar `json:"name"`
}

func Genre(in GenreInput) (*entities.Genre, error) {
	name := in.Name.String()
	if name == "" {
		return nil, errf("name", "name is required")
	}
	return &entities.Genre{Name: name}, nil
}

type AuthorInput struct {
	Name Scalar `json:"name"`
	Bio  Scalar `json:"bio"`
}

func Author(in AuthorInput) (*entities.Author, error) {
	name := in.Name.String()
	if name == "" {
		return nil, errf("name", "name is required")
	}
	return &entities.Author{Name: name, Bio: in.Bio.String()}, nil
}

type PublisherInput struct {
	Name    Scalar `json:"name"`
	Address Scalar `json:"address"`
}

func Publisher(in PublisherInput) (*entities.Publisher, error) {
	name := in.Name.String()
	if name == "" {
		return nil, errf("name", "name is required")
	}
	return &entities.Publisher{Name: name, Address: in.Address.String()}, nil
}

type CategoryInput struct {
	Name Scalar `json:"name"`
}

func Category(in CategoryInput) (*entities.Category, error) {
	name := in.Name.String()
	if name == "" {
		return nil, errf("name", "name is required")
	}
	return &entities.Category{Name: name}, nil
}

type StaffInput struct {
	Name    Scalar `json:"name"`
	Role    Scalar `json:"role"`
	Contact Scalar `json:"contact"`
}

func Staff(in StaffInput) (*entities.LibraryStaff, error) {
	name := in.Name.String()
	if name == "" {
		return nil, errf("name", "name is required")
	}
	role := in.Role.String()
	if role == "" {
		return nil, errf("role", "role is required")
	}
	return &entities.LibraryStaff{Name: name, Role: role, Contact: in.Contact.String()}, nil
}
