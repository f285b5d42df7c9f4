package authservice

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestRegisterNewAccount(t *testing.T) {
	convey.Convey("Given a new user with email, password and nickname", t, func() {
		req := RegisterRequest{"user@user.com", "password1", "user"}
		accounts := NewAccountRepository()
		svc := NewAccountService(accounts, &eventSinkSpy{})

		convey.Convey("When the user registers", func() {
			comm, err := svc.Register(req)

			convey.So(err, convey.ShouldBeNil)
			convey.So(comm.Result, convey.ShouldEqual, Success)

			convey.Convey("Then the stored account carries the email", func() {
				acc, err := accounts.FindByEmail(req.Email)

				convey.So(err, convey.ShouldBeNil)
				convey.So(acc.ID, convey.ShouldEqual, comm.Data)
			})

			convey.Convey("And registering the same email again conflicts", func() {
				again, err := svc.Register(req)

				convey.So(err, convey.ShouldBeNil)
				convey.So(again.Result, convey.ShouldEqual, DataConflicts)
			})
		})
	})
}

func TestLoginAndTokenFlow(t *testing.T) {
	convey.Convey("Given an existing account", t, func() {
		accounts := NewAccountRepository()
		svc := NewAccountService(accounts, &eventSinkSpy{})
		tokens := NewTokenService(NewTokenRepository())

		reg, err := svc.Register(RegisterRequest{"user@user.com", "password1", "user"})
		convey.So(err, convey.ShouldBeNil)
		convey.So(isValidID(string(reg.Data)), convey.ShouldBeTrue)

		convey.Convey("When the user logs in with correct credentials", func() {
			comm, err := svc.Login(LoginRequest{"user@user.com", "password1"})

			convey.So(err, convey.ShouldBeNil)
			convey.So(comm.Result, convey.ShouldEqual, Success)
			convey.So(comm.Data.ID, convey.ShouldEqual, reg.Data)

			convey.Convey("And a token is issued for the account", func() {
				tok, err := tokens.Issue(comm.Data.ID)

				convey.So(err, convey.ShouldBeNil)
				convey.So(tok.UserID, convey.ShouldEqual, reg.Data)

				convey.Convey("Then the token authenticates by value", func() {
					got, err := tokens.GetByToken(tok.ID)

					convey.So(err, convey.ShouldBeNil)
					convey.So(got, convey.ShouldNotBeNil)
					convey.So(got.UserID, convey.ShouldEqual, reg.Data)
				})
			})
		})

		convey.Convey("When the user logs in with a wrong password", func() {
			comm, err := svc.Login(LoginRequest{"user@user.com", "password2"})

			convey.So(err, convey.ShouldBeNil)
			convey.So(comm.Result, convey.ShouldEqual, DataNotFound)
		})
	})
}
