package auth

// The portal ships with a fixed directory of demo users sharing one
// password. Real credential storage is out of scope.
const sharedPassword = "password123"

var userDirectory = map[string]Actor{
	"staff@clinic1.com": {
		ID:         "1",
		Username:   "staff@clinic1.com",
		Role:       RoleStaff,
		ClinicID:   "clinic1",
		ClinicName: "Downtown Medical Center",
	},
	"admin@clinic1.com": {
		ID:         "2",
		Username:   "admin@clinic1.com",
		Role:       RoleAdmin,
		ClinicID:   "clinic1",
		ClinicName: "Downtown Medical Center",
	},
	"sysadmin@mysage.com": {
		ID:         "3",
		Username:   "sysadmin@mysage.com",
		Role:       RoleSystemAdmin,
		ClinicID:   "all",
		ClinicName: "mySage System",
	},
}

// DemoUsers lists the directory entries in a stable order.
func DemoUsers() []Actor {
	return []Actor{
		userDirectory["staff@clinic1.com"],
		userDirectory["admin@clinic1.com"],
		userDirectory["sysadmin@mysage.com"],
	}
}
