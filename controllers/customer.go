package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/genepreston69/hours-of-hope-tracker-sub000/config"
	"github.com/genepreston69/hours-of-hope-tracker-sub000/importer"
	"github.com/genepreston69/hours-of-hope-tracker-sub000/models"
	"github.com/genepreston69/hours-of-hope-tracker-sub000/services"
	"github.com/genepreston69/hours-of-hope-tracker-sub000/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateCustomerInput defines the expected JSON structure for creating a customer
type CreateCustomerInput struct {
	Name         string  `json:"name" binding:"required"`
	ContactName  *string `json:"contactName"`
	ContactEmail *string `json:"contactEmail"`
	ContactPhone *string `json:"contactPhone"`
	Street       *string `json:"street"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	Zip          *string `json:"zip"`
}

// UpdateCustomerInput defines the expected JSON structure for updating a customer
type UpdateCustomerInput struct {
	Name         *string `json:"name"`
	ContactName  *string `json:"contactName"`
	ContactEmail *string `json:"contactEmail"`
	ContactPhone *string `json:"contactPhone"`
	Street       *string `json:"street"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	Zip          *string `json:"zip"`
}

// ImportCustomersInput carries the raw CSV text of a customer import
type ImportCustomersInput struct {
	CSV string `json:"csv" binding:"required"`
}

// CreateCustomer creates a new customer for the organization
func CreateCustomer(c *gin.Context) {
	orgID, exists := c.Get("orgId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Organization ID not found in context")
		return
	}
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	orgUUID, err := uuid.Parse(orgID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid organization ID format")
		return
	}

	var input CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Check if the name already exists for this organization
	var existingCustomer models.Customer
	if err := config.DB.Where("organization_id = ? AND LOWER(name) = LOWER(?)", orgUUID, strings.TrimSpace(input.Name)).
		First(&existingCustomer).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Customer with this name already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	customer := models.Customer{
		ID:              uuid.New(),
		OrganizationID:  orgUUID,
		CreatedByUserID: uuid.Must(uuid.Parse(userID.(string))),
		Name:            strings.TrimSpace(input.Name),
	}

	if input.ContactName != nil {
		customer.ContactName = *input.ContactName
	}
	if input.ContactEmail != nil {
		customer.ContactEmail = *input.ContactEmail
	}
	if input.ContactPhone != nil {
		customer.ContactPhone = *input.ContactPhone
	}
	if input.Street != nil {
		customer.Street = *input.Street
	}
	if input.City != nil {
		customer.City = *input.City
	}
	if input.State != nil {
		customer.State = *input.State
	}
	if input.Zip != nil {
		customer.Zip = *input.Zip
	}

	if err := config.DB.Create(&customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create customer")
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// GetCustomers retrieves all customers for the organization
func GetCustomers(c *gin.Context) {
	orgID, exists := c.Get("orgId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Organization ID not found in context")
		return
	}

	orgUUID, err := uuid.Parse(orgID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid organization ID format")
		return
	}

	var customers []models.Customer
	if err := config.DB.Where("organization_id = ?", orgUUID).Order("name ASC").Find(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	c.JSON(http.StatusOK, customers)
}

// GetCustomer retrieves a specific customer by ID
func GetCustomer(c *gin.Context) {
	orgID, exists := c.Get("orgId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Organization ID not found in context")
		return
	}

	orgUUID, err := uuid.Parse(orgID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid organization ID format")
		return
	}

	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var customer models.Customer
	if err := config.DB.Where("organization_id = ? AND id = ?", orgUUID, customerUUID).
		First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, customer)
}

// UpdateCustomer updates an existing customer
func UpdateCustomer(c *gin.Context) {
	orgID, exists := c.Get("orgId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Organization ID not found in context")
		return
	}

	orgUUID, err := uuid.Parse(orgID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid organization ID format")
		return
	}

	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var input UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Retrieve existing customer
	var customer models.Customer
	if err := config.DB.Where("organization_id = ? AND id = ?", orgUUID, customerUUID).
		First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Update fields if provided
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if !strings.EqualFold(customer.Name, name) {
			var existingCustomer models.Customer
			if err := config.DB.Where("organization_id = ? AND LOWER(name) = LOWER(?)", orgUUID, name).
				First(&existingCustomer).Error; err == nil {
				utils.RespondWithError(c, http.StatusConflict, "Another customer with this name already exists")
				return
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
				return
			}
		}
		customer.Name = name
	}
	if input.ContactName != nil {
		customer.ContactName = *input.ContactName
	}
	if input.ContactEmail != nil {
		customer.ContactEmail = *input.ContactEmail
	}
	if input.ContactPhone != nil {
		customer.ContactPhone = *input.ContactPhone
	}
	if input.Street != nil {
		customer.Street = *input.Street
	}
	if input.City != nil {
		customer.City = *input.City
	}
	if input.State != nil {
		customer.State = *input.State
	}
	if input.Zip != nil {
		customer.Zip = *input.Zip
	}

	if err := config.DB.Save(&customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer")
		return
	}

	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer deletes a customer unless service entries still reference
// it. The referential check happens before any mutation; a referenced
// customer is a soft business-rule rejection, not an error.
func DeleteCustomer(c *gin.Context) {
	orgID, exists := c.Get("orgId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Organization ID not found in context")
		return
	}

	orgUUID, err := uuid.Parse(orgID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid organization ID format")
		return
	}

	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var referencing int64
	if err := config.DB.Model(&models.ServiceEntry{}).
		Where("organization_id = ? AND customer_id = ?", orgUUID, customerUUID).
		Count(&referencing).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if referencing > 0 {
		utils.RespondWithError(c, http.StatusConflict, "Customer has service entries and cannot be deleted")
		return
	}

	result := config.DB.Where("organization_id = ? AND id = ?", orgUUID, customerUUID).
		Delete(&models.Customer{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete customer")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}

// ImportCustomers bulk-creates customers from CSV text. Rows whose name
// matches an existing customer (case-insensitive) are silently dropped and
// excluded from the added count.
func ImportCustomers(c *gin.Context) {
	orgID, exists := c.Get("orgId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Organization ID not found in context")
		return
	}
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	orgUUID, err := uuid.Parse(orgID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid organization ID format")
		return
	}

	var input ImportCustomersInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	rows, parseErrors := importer.ParseCustomersCSV(input.CSV)
	if len(parseErrors) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": parseErrors})
		return
	}

	var existing []models.Customer
	if err := config.DB.Where("organization_id = ?", orgUUID).Find(&existing).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}
	existingNames := make(map[string]bool, len(existing))
	for _, cust := range existing {
		existingNames[strings.ToLower(strings.TrimSpace(cust.Name))] = true
	}

	creatorID := uuid.Must(uuid.Parse(userID.(string)))
	added := 0
	skipped := 0
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			key := strings.ToLower(strings.TrimSpace(row.Name))
			if existingNames[key] {
				skipped++
				continue
			}
			customer := models.Customer{
				ID:              uuid.New(),
				OrganizationID:  orgUUID,
				CreatedByUserID: creatorID,
				Name:            row.Name,
				ContactName:     row.ContactName,
				ContactEmail:    row.ContactEmail,
				ContactPhone:    row.ContactPhone,
				Street:          row.Street,
				City:            row.City,
				State:           row.State,
				Zip:             row.Zip,
			}
			if err := tx.Create(&customer).Error; err != nil {
				return err
			}
			existingNames[key] = true
			added++
		}
		return nil
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to import customers")
		return
	}

	c.JSON(http.StatusOK, gin.H{"added": added, "skipped": skipped})
}

// ExportCustomers streams the customer list as a CSV download
func ExportCustomers(c *gin.Context) {
	orgID, exists := c.Get("orgId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Organization ID not found in context")
		return
	}

	orgUUID, err := uuid.Parse(orgID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid organization ID format")
		return
	}

	var customers []models.Customer
	if err := config.DB.Where("organization_id = ?", orgUUID).Order("name ASC").Find(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	filename := services.CustomersCSVFilename(time.Now())
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", []byte(services.CustomersCSV(customers)))
}
