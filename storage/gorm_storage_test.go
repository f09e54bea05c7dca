package storage_test

import (
	"context"
	"deskgate/storage"
	"deskgate/testinfra"
	"testing"

	"github.com/fundwit/go-commons/types"
	. "github.com/onsi/gomega"
)

func TestGormSessionStorage(t *testing.T) {
	RegisterTestingT(t)
	testinfra.SkipWithoutMysql(t)

	testDatabase := testinfra.StartMysqlTestDatabase("deskgate")
	defer testinfra.StopMysqlTestDatabase(testDatabase)
	Expect(testDatabase.DS.GormDB(context.Background()).AutoMigrate(&storage.SessionRecord{}).Error).To(BeNil())

	sessionStorage := storage.NewGormSessionStorage(testDatabase.DS)

	t.Run("should save and find a session record", func(t *testing.T) {
		record := storage.SessionRecord{
			Token:      "token-1",
			Identity:   `{"id":"10","name":"ann"}`,
			CreateTime: types.CurrentTimestamp(),
		}
		Expect(sessionStorage.SaveSession(context.Background(), &record)).To(BeNil())

		found, err := sessionStorage.Find(context.Background(), "token-1")
		Expect(err).To(BeNil())
		Expect(found).ToNot(BeNil())
		Expect(found.Identity).To(Equal(`{"id":"10","name":"ann"}`))
		Expect(found.PermsLoaded).To(BeFalse())
	})

	t.Run("should return nil for an unknown token", func(t *testing.T) {
		found, err := sessionStorage.Find(context.Background(), "no-such-token")
		Expect(err).To(BeNil())
		Expect(found).To(BeNil())
	})

	t.Run("should replace the cached permissions and mark them loaded", func(t *testing.T) {
		record := storage.SessionRecord{Token: "token-2", Identity: `{"id":"11"}`, CreateTime: types.CurrentTimestamp()}
		Expect(sessionStorage.SaveSession(context.Background(), &record)).To(BeNil())

		Expect(sessionStorage.SavePermissions(context.Background(), "token-2",
			`{"userId":"11","permissionsByResource":{}}`)).To(BeNil())

		found, err := sessionStorage.Find(context.Background(), "token-2")
		Expect(err).To(BeNil())
		Expect(found.Permissions).To(Equal(`{"userId":"11","permissionsByResource":{}}`))
		Expect(found.PermsLoaded).To(BeTrue())
		Expect(found.Identity).To(Equal(`{"id":"11"}`))
	})

	t.Run("should delete every slot of the session at once", func(t *testing.T) {
		record := storage.SessionRecord{Token: "token-3", Identity: `{"id":"12"}`, CreateTime: types.CurrentTimestamp()}
		Expect(sessionStorage.SaveSession(context.Background(), &record)).To(BeNil())
		Expect(sessionStorage.SavePermissions(context.Background(), "token-3", `{}`)).To(BeNil())

		Expect(sessionStorage.Delete(context.Background(), "token-3")).To(BeNil())

		found, err := sessionStorage.Find(context.Background(), "token-3")
		Expect(err).To(BeNil())
		Expect(found).To(BeNil())
	})

	t.Run("should tolerate deleting an unknown token", func(t *testing.T) {
		Expect(sessionStorage.Delete(context.Background(), "no-such-token")).To(BeNil())
	})
}
