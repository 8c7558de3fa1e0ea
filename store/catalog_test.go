package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/openamr/surveillance-api/schema"
)

type CatalogTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewCatalogTestSuite(connURI, dbName string) *CatalogTestSuite {
	return &CatalogTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *CatalogTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}

	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
}

// CleanMongoDB drop the whole test mongodb
func (s *CatalogTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *CatalogTestSuite) TestResolvePathogenCreatesThenReuses() {
	store := NewMongoStore(s.mongoClient, s.testDBName, nil)

	first, err := store.ResolvePathogen("E. coli", "Escherichia coli", "bacteria")
	s.NoError(err)
	s.False(first.ID.IsZero())
	s.Equal("E. coli", first.Name)
	s.Equal("Escherichia coli", first.ScientificName)

	// a second resolution of the same name must return the same entity,
	// ignoring the new attributes
	second, err := store.ResolvePathogen("E. coli", "", "")
	s.NoError(err)
	s.Equal(first.ID, second.ID)
	s.Equal("Escherichia coli", second.ScientificName)
}

func (s *CatalogTestSuite) TestResolvePathogenIsCaseSensitive() {
	store := NewMongoStore(s.mongoClient, s.testDBName, nil)

	lower, err := store.ResolvePathogen("klebsiella pneumoniae", "", "bacteria")
	s.NoError(err)

	upper, err := store.ResolvePathogen("Klebsiella pneumoniae", "", "bacteria")
	s.NoError(err)

	s.NotEqual(lower.ID, upper.ID)
}

func (s *CatalogTestSuite) TestResolveAntibioticCreatesThenReuses() {
	store := NewMongoStore(s.mongoClient, s.testDBName, nil)

	first, err := store.ResolveAntibiotic("Ciprofloxacin", "fluoroquinolone")
	s.NoError(err)
	s.False(first.ID.IsZero())

	second, err := store.ResolveAntibiotic("Ciprofloxacin", "")
	s.NoError(err)
	s.Equal(first.ID, second.ID)
	s.Equal("fluoroquinolone", second.DrugClass)
}

func (s *CatalogTestSuite) TestResolveEmptyNameRejected() {
	store := NewMongoStore(s.mongoClient, s.testDBName, nil)

	_, err := store.ResolvePathogen("", "", "")
	s.Equal(ErrEmptyCatalogName, err)

	_, err = store.ResolveAntibiotic("", "")
	s.Equal(ErrEmptyCatalogName, err)
}

// TestConcurrentResolveSameName races multiple resolutions of one new
// name. The unique index plus the duplicate-key retry must collapse them
// onto a single entity.
func (s *CatalogTestSuite) TestConcurrentResolveSameName() {
	store := NewMongoStore(s.mongoClient, s.testDBName, nil)

	const workers = 8
	var wg sync.WaitGroup
	ids := make(chan string, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := store.ResolvePathogen("Acinetobacter baumannii", "", "bacteria")
			s.NoError(err)
			ids <- p.ID.Hex()
		}()
	}
	wg.Wait()
	close(ids)

	unique := make(map[string]struct{})
	for id := range ids {
		unique[id] = struct{}{}
	}
	s.Len(unique, 1)
}

func (s *CatalogTestSuite) TestListCatalog() {
	store := NewMongoStore(s.mongoClient, s.testDBName, nil)

	_, err := store.ResolvePathogen("Staphylococcus aureus", "", "bacteria")
	s.NoError(err)
	_, err = store.ResolveAntibiotic("Vancomycin", "glycopeptide")
	s.NoError(err)

	pathogens, err := store.ListPathogens()
	s.NoError(err)
	s.NotEmpty(pathogens)

	antibiotics, err := store.ListAntibiotics()
	s.NoError(err)
	s.NotEmpty(antibiotics)
}

func TestCatalogTestSuite(t *testing.T) {
	suite.Run(t, NewCatalogTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db-catalog"))
}
