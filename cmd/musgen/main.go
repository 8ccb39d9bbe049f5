package main

import (
	"os"
	"reflect"
	"strings"

	musgen "github.com/mus-format/musgen-go/mus"
	genops "github.com/mus-format/musgen-go/options/generate"
	structops "github.com/mus-format/musgen-go/options/struct"
	typeops "github.com/mus-format/musgen-go/options/type"
	"github.com/poiesic/polingest/core"
)

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	// If we're in the core subpackage, cd up to project root
	if strings.HasSuffix(cwd, "core") {
		if err := os.Chdir(".."); err != nil {
			panic(err)
		}
	}
	g, err := musgen.NewCodeGenerator(
		genops.WithPkgPath("github.com/poiesic/polingest/core"),
	)
	if err != nil {
		panic(err)
	}

	g.AddDefinedType(reflect.TypeFor[core.ID]())
	g.AddDefinedType(reflect.TypeFor[core.JobStatus]())

	// Unix micro timestamps
	opts := typeops.WithTimeUnit(typeops.Micro)

	// Meta: Id, CreatedDate, UpdatedDate, DeletedDate, IsDeleted
	err = g.AddStruct(reflect.TypeFor[core.Meta](),
		structops.WithField(),
		structops.WithField(opts),
		structops.WithField(opts),
		structops.WithField(opts),
		structops.WithField())
	if err != nil {
		panic(err)
	}

	// Agent: Meta, AgentName
	err = g.AddStruct(reflect.TypeFor[core.Agent](),
		structops.WithField(),
		structops.WithField())
	if err != nil {
		panic(err)
	}

	// Carrier: Meta, CompanyName
	err = g.AddStruct(reflect.TypeFor[core.Carrier](),
		structops.WithField(),
		structops.WithField())
	if err != nil {
		panic(err)
	}

	// LineOfBusiness: Meta, CategoryName
	err = g.AddStruct(reflect.TypeFor[core.LineOfBusiness](),
		structops.WithField(),
		structops.WithField())
	if err != nil {
		panic(err)
	}

	// User: Meta, UserName, FirstName and eight optional details
	err = g.AddStruct(reflect.TypeFor[core.User](),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField())
	if err != nil {
		panic(err)
	}

	// UserAccount: Meta, AccountName, AccountType, UserId
	err = g.AddStruct(reflect.TypeFor[core.UserAccount](),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField())
	if err != nil {
		panic(err)
	}

	// Policy: Meta, PolicyNumber, StartDate, EndDate, LobId, CarrierId, UserId
	err = g.AddStruct(reflect.TypeFor[core.Policy](),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(opts),
		structops.WithField(opts),
		structops.WithField(),
		structops.WithField(),
		structops.WithField())
	if err != nil {
		panic(err)
	}

	// ResolutionGap: Row, Field, Key, Reason
	err = g.AddStruct(reflect.TypeFor[core.ResolutionGap](),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField())
	if err != nil {
		panic(err)
	}

	// EntityCounts: seven counters
	err = g.AddStruct(reflect.TypeFor[core.EntityCounts](),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField())
	if err != nil {
		panic(err)
	}

	// Job: Id .. Gaps, then CreatedAt, StartedAt, FinishedAt
	err = g.AddStruct(reflect.TypeFor[core.Job](),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(opts),
		structops.WithField(opts),
		structops.WithField(opts))
	if err != nil {
		panic(err)
	}

	bs, err := g.Generate()
	if err != nil {
		panic(err)
	}

	// go generate runs in the core package directory.
	err = os.WriteFile("records_mus.gen.go", bs, 0644)
	if err != nil {
		panic(err)
	}
}
