package repository_test

import (
	"fmt"

	"github.com/npillmayer/uchar"
	"github.com/npillmayer/uchar/repository"
)

func ExampleRepository_GetMany() {
	repo := repository.New()
	query, _ := repo.Get("\u00e9")
	candidates, _ := repo.GetMany([]string{"e", "\u00e9", "E", "\u00c9", "E\u0301"})
	for _, c := range candidates {
		fmt.Printf("%+q %v\n", c.Text(), uchar.MatchesSmart(query, c))
	}
	// Output: "e" false
	// "\u00e9" true
	// "E" false
	// "\u00c9" true
	// "E\u0301" true
}
