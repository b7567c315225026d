package services

import (
	"errors"
	"testing"

	"github.com/MyLifeUa/rest-api/models"
)

func TestAuthorizeSelfAccess(t *testing.T) {
	client := Requester{Role: models.RoleClient, Email: "ana@mail.com"}
	facts := RelationshipFacts{TargetRole: models.RoleClient}

	// Self access covers the full CRUD set regardless of other facts.
	for _, op := range []Operation{OpRead, OpUpdate, OpDelete} {
		if err := Authorize(client, op, "ana@mail.com", facts); err != nil {
			t.Errorf("self %s: got %v, want allow", op, err)
		}
	}
}

func TestAuthorizeClientIsolation(t *testing.T) {
	client := Requester{Role: models.RoleClient, Email: "ana@mail.com"}
	facts := RelationshipFacts{TargetRole: models.RoleClient}

	for _, op := range []Operation{OpRead, OpUpdate, OpDelete} {
		err := Authorize(client, op, "bruno@mail.com", facts)
		if !errors.Is(err, models.ErrForbidden) {
			t.Errorf("cross-client %s: got %v, want ErrForbidden", op, err)
		}
	}
}

func TestAuthorizeDoctorReadsPatient(t *testing.T) {
	doctor := Requester{Role: models.RoleDoctor, Email: "dr.house@mail.com", Hospital: "H1"}
	assigned := RelationshipFacts{TargetRole: models.RoleClient, AssignedDoctor: "dr.house@mail.com"}

	if err := Authorize(doctor, OpRead, "ana@mail.com", assigned); err != nil {
		t.Errorf("doctor read assigned patient: got %v, want allow", err)
	}

	// Read-only: never write.
	for _, op := range []Operation{OpUpdate, OpDelete} {
		if err := Authorize(doctor, op, "ana@mail.com", assigned); !errors.Is(err, models.ErrForbidden) {
			t.Errorf("doctor %s on patient: got %v, want ErrForbidden", op, err)
		}
	}
}

func TestAuthorizeUnrelatedDoctorDenied(t *testing.T) {
	// Doctor A attempts to read a client assigned to doctor B: denied
	// even though A is a valid doctor.
	doctorA := Requester{Role: models.RoleDoctor, Email: "a@mail.com", Hospital: "H1"}
	facts := RelationshipFacts{TargetRole: models.RoleClient, AssignedDoctor: "b@mail.com"}

	if err := Authorize(doctorA, OpRead, "ana@mail.com", facts); !errors.Is(err, models.ErrForbidden) {
		t.Errorf("unrelated doctor read: got %v, want ErrForbidden", err)
	}
}

func TestAuthorizePatientReadsOwnDoctor(t *testing.T) {
	client := Requester{Role: models.RoleClient, Email: "ana@mail.com"}

	own := RelationshipFacts{TargetRole: models.RoleDoctor, RequesterDoctor: "dr.house@mail.com"}
	if err := Authorize(client, OpRead, "dr.house@mail.com", own); err != nil {
		t.Errorf("patient reads own doctor: got %v, want allow", err)
	}

	other := RelationshipFacts{TargetRole: models.RoleDoctor, RequesterDoctor: "dr.house@mail.com"}
	if err := Authorize(client, OpRead, "dr.grey@mail.com", other); !errors.Is(err, models.ErrForbidden) {
		t.Errorf("patient reads other doctor: got %v, want ErrForbidden", err)
	}

	unassigned := RelationshipFacts{TargetRole: models.RoleDoctor}
	if err := Authorize(client, OpRead, "dr.house@mail.com", unassigned); !errors.Is(err, models.ErrForbidden) {
		t.Errorf("unassigned patient reads doctor: got %v, want ErrForbidden", err)
	}
}

func TestAuthorizeAdminManagesDoctor(t *testing.T) {
	admin := Requester{Role: models.RoleAdmin, Email: "admin@mail.com", Hospital: "H1"}

	sameHospital := RelationshipFacts{TargetRole: models.RoleDoctor, DoctorHospital: "H1"}
	if err := Authorize(admin, OpRead, "dr.house@mail.com", sameHospital); err != nil {
		t.Errorf("admin read hospital doctor: got %v, want allow", err)
	}
	if err := Authorize(admin, OpDelete, "dr.house@mail.com", sameHospital); err != nil {
		t.Errorf("admin delete hospital doctor: got %v, want allow", err)
	}

	// Never updates the doctor's own profile fields.
	if err := Authorize(admin, OpUpdate, "dr.house@mail.com", sameHospital); !errors.Is(err, models.ErrForbidden) {
		t.Errorf("admin update doctor: got %v, want ErrForbidden", err)
	}

	otherHospital := RelationshipFacts{TargetRole: models.RoleDoctor, DoctorHospital: "H2"}
	if err := Authorize(admin, OpRead, "dr.grey@mail.com", otherHospital); !errors.Is(err, models.ErrForbidden) {
		t.Errorf("admin read other-hospital doctor: got %v, want ErrForbidden", err)
	}
}

func TestAuthorizeAccountCreation(t *testing.T) {
	admin := Requester{Role: models.RoleAdmin, Email: "admin@mail.com", Hospital: "H1"}
	doctor := Requester{Role: models.RoleDoctor, Email: "dr.house@mail.com", Hospital: "H1"}
	client := Requester{Role: models.RoleClient, Email: "ana@mail.com"}

	for _, op := range []Operation{OpCreateDoctor, OpCreateAdmin} {
		if err := Authorize(admin, op, "", RelationshipFacts{}); err != nil {
			t.Errorf("admin %s: got %v, want allow", op, err)
		}
		if err := Authorize(doctor, op, "", RelationshipFacts{}); !errors.Is(err, models.ErrForbidden) {
			t.Errorf("doctor %s: got %v, want ErrForbidden", op, err)
		}
		if err := Authorize(client, op, "", RelationshipFacts{}); !errors.Is(err, models.ErrForbidden) {
			t.Errorf("client %s: got %v, want ErrForbidden", op, err)
		}
	}
}
