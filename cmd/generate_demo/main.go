// Command generate_demo creates a demo database pre-populated with a small
// library catalog, a handful of members and some circulation history.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/mrlokans/libman/internal/database"
	"github.com/mrlokans/libman/internal/database/records"
	librecords "github.com/mrlokans/libman/internal/records"
	"github.com/mrlokans/libman/internal/validation"
)

const defaultDemoDatabasePath = "./demo.db"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	svc := librecords.NewService(records.NewRepository(db.DB))

	genres := createAll(svc.CreateGenre, []validation.GenreInput{
		{Name: "Science Fiction"},
		{Name: "Philosophy"},
		{Name: "Classic Fiction"},
		{Name: "History"},
	})
	authors := createAll(svc.CreateAuthor, []validation.AuthorInput{
		{Name: "Frank Herbert", Bio: "American science fiction writer."},
		{Name: "Marcus Aurelius", Bio: "Roman emperor and Stoic philosopher."},
		{Name: "Jane Austen"},
		{Name: "Edward Gibbon"},
	})
	createAll(svc.CreatePublisher, []validation.PublisherInput{
		{Name: "Ace Books", Address: "New York, NY"},
		{Name: "Penguin Classics", Address: "London, UK"},
	})
	createAll(svc.CreateCategory, []validation.CategoryInput{
		{Name: "General Collection"},
		{Name: "Reference"},
	})

	books := createAll(svc.CreateBook, []validation.BookInput{
		{Title: "Dune", AuthorID: scalar(authors[0].ID), ISBN: "9780441013593", GenreID: scalar(genres[0].ID), PublicationYear: "1965"},
		{Title: "Meditations", AuthorID: scalar(authors[1].ID), ISBN: "9780140449334", GenreID: scalar(genres[1].ID)},
		{Title: "Pride and Prejudice", AuthorID: scalar(authors[2].ID), ISBN: "9780141439518", GenreID: scalar(genres[2].ID), PublicationYear: "1813"},
		{Title: "The Decline and Fall of the Roman Empire", AuthorID: scalar(authors[3].ID), ISBN: "9780140437645", GenreID: scalar(genres[3].ID)},
	})

	members := createAll(svc.CreateMember, []validation.MemberInput{
		{Name: "Alice Carter", Email: "alice.carter@example.com", Phone: "555-0134-201"},
		{Name: "Ben Okafor", Email: "ben.okafor@example.com"},
		{Name: "Carmen Diaz", Email: "carmen.diaz@example.com", Phone: "555-0134-202"},
	})

	createAll(svc.CreateStaff, []validation.StaffInput{
		{Name: "Dana Whitfield", Role: "Head Librarian", Contact: "dana@library.example"},
		{Name: "Evan Brooks", Role: "Circulation Clerk"},
	})

	// Circulation history: one long-overdue loan, one returned, one recent.
	today := time.Now()
	dated := func(daysAgo int) validation.Scalar {
		return validation.Scalar(today.AddDate(0, 0, -daysAgo).Format("2006-01-02"))
	}

	createAll(svc.CreateLoan, []validation.LoanInput{
		{BookID: scalar(books[0].ID), MemberID: scalar(members[0].ID), IssueDate: dated(30)},
		{BookID: scalar(books[1].ID), MemberID: scalar(members[1].ID), IssueDate: dated(45), ReturnDate: dated(20), Status: "Returned"},
		{BookID: scalar(books[2].ID), MemberID: scalar(members[2].ID), IssueDate: dated(3)},
	})
	createAll(svc.CreateFine, []validation.FineInput{
		{MemberID: scalar(members[0].ID), Amount: "8.00", IssueDate: dated(10)},
		{MemberID: scalar(members[1].ID), Amount: "2.50", IssueDate: dated(25), Status: "Paid"},
	})
	createAll(svc.CreateReservation, []validation.ReservationInput{
		{BookID: scalar(books[3].ID), MemberID: scalar(members[0].ID)},
	})

	log.Println("Demo database generated successfully!")
}

func scalar(id uint) validation.Scalar {
	return validation.Scalar(strconv.FormatUint(uint64(id), 10))
}

func createAll[I any, E any](create func(I) (*E, error), inputs []I) []*E {
	out := make([]*E, 0, len(inputs))
	for _, in := range inputs {
		e, err := create(in)
		if err != nil {
			log.Fatalf("Failed to seed record: %v", err)
		}
		out = append(out, e)
	}
	return out
}
