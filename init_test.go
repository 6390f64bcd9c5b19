package geoapify_test

import (
	"net/http"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/suite"

	geoapify "github.com/nigelhorne/Geo-Coder-GeoApify"
)

const testAPIKey = "testkey"

type ClientTestSuite struct {
	suite.Suite

	client *geoapify.Client
}

func (suite *ClientTestSuite) SetupTest() {
	client, err := geoapify.NewClient(geoapify.Opts{
		APIKey:     testAPIKey,
		HTTPClient: &http.Client{},
		Logger:     geoapify.NewNopLogger(),
	})
	if err != nil {
		panic(err)
	}

	suite.client = client
}

type MockedClientTestSuite struct {
	ClientTestSuite
}

func (suite *MockedClientTestSuite) SetupSuite() {
	httpmock.Activate()
}

func (suite *MockedClientTestSuite) TearDownSuite() {
	httpmock.DeactivateAndReset()
}

func (suite *MockedClientTestSuite) TearDownTest() {
	httpmock.Reset()
}

type LoggerMock struct {
	operations []string
	errors     []error
}

func (m *LoggerMock) RequestError(operation string, err error) {
	m.operations = append(m.operations, operation)
	m.errors = append(m.errors, err)
}
