// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package wizardstate

import (
	"slices"
	"sort"

	"github.com/osbuild/image-builder-blueprints/toolkit/tools/blueprintapi"
	"github.com/osbuild/image-builder-blueprints/toolkit/tools/internal/sliceutils"
)

func InitializeWizard() Action {
	return func(s *State) {
		*s = InitialState()
	}
}

// LoadWizardState replaces the whole state. Step validations are reset to the check of the
// blueprint name.
func LoadWizardState(loaded State) Action {
	return func(s *State) {
		isNameValid := IsBlueprintNameValid(loaded.Details.BlueprintName)

		*s = loaded.Clone()
		s.StepValidations = map[StepID]StepValidation{
			StepDetails: {
				Validated: validatedFromBool(isNameValid),
				Inputs:    map[string]bool{"name": isNameValid},
			},
		}
	}
}

func ChangeServerUrl(serverURL string) Action {
	return func(s *State) {
		s.Env.ServerURL = serverURL
	}
}

func ChangeBaseUrl(baseURL string) Action {
	return func(s *State) {
		s.Env.BaseURL = baseURL
	}
}

func ChangeArchitecture(architecture blueprintapi.Architecture) Action {
	return func(s *State) {
		s.Architecture = architecture
	}
}

func ChangeDistribution(distribution blueprintapi.Distribution) Action {
	return func(s *State) {
		s.Distribution = distribution
	}
}

// AddImageType appends an image type, moving it to the end if already selected.
func AddImageType(imageType blueprintapi.ImageType) Action {
	return func(s *State) {
		s.ImageTypes = append(sliceutils.RemoveValue(s.ImageTypes, imageType), imageType)
	}
}

func RemoveImageType(imageType blueprintapi.ImageType) Action {
	return func(s *State) {
		s.ImageTypes = sliceutils.RemoveValue(s.ImageTypes, imageType)
	}
}

func ChangeImageTypes(imageTypes []blueprintapi.ImageType) Action {
	return func(s *State) {
		s.ImageTypes = slices.Clone(imageTypes)
	}
}

func ChangeAwsAccountId(accountID string) Action {
	return func(s *State) {
		s.Aws.AccountID = accountID
	}
}

func ChangeAwsShareMethod(shareMethod AwsShareMethod) Action {
	return func(s *State) {
		s.Aws.ShareMethod = shareMethod
	}
}

func ChangeAwsSourceId(sourceID string) Action {
	return func(s *State) {
		s.Aws.SourceID = sourceID
	}
}

func ChangeAzureTenantId(tenantID string) Action {
	return func(s *State) {
		s.Azure.TenantID = tenantID
	}
}

func ChangeAzureShareMethod(shareMethod AzureShareMethod) Action {
	return func(s *State) {
		s.Azure.ShareMethod = shareMethod
	}
}

func ChangeAzureSubscriptionId(subscriptionID string) Action {
	return func(s *State) {
		s.Azure.SubscriptionID = subscriptionID
	}
}

func ChangeAzureSource(source string) Action {
	return func(s *State) {
		s.Azure.Source = source
	}
}

func ChangeAzureResourceGroup(resourceGroup string) Action {
	return func(s *State) {
		s.Azure.ResourceGroup = resourceGroup
	}
}

// ChangeGcpShareMethod switches the gcp share method. Sharing with insights clears the account.
func ChangeGcpShareMethod(shareMethod GcpShareMethod) Action {
	return func(s *State) {
		switch shareMethod {
		case GcpShareMethodWithInsights:
			s.Gcp.AccountType = GcpAccountTypeNone
			s.Gcp.Email = ""

		case GcpShareMethodWithGoogle:
			s.Gcp.AccountType = GcpAccountTypeUser
		}
		s.Gcp.ShareMethod = shareMethod
	}
}

func ChangeGcpAccountType(accountType GcpAccountType) Action {
	return func(s *State) {
		s.Gcp.AccountType = accountType
	}
}

func ChangeGcpEmail(email string) Action {
	return func(s *State) {
		s.Gcp.Email = email
	}
}

func ChangeRegistrationType(registrationType RegistrationType) Action {
	return func(s *State) {
		s.Registration.RegistrationType = registrationType
	}
}

func ChangeActivationKey(activationKey string) Action {
	return func(s *State) {
		s.Registration.ActivationKey = activationKey
	}
}

func ChangeOscapProfile(profile string) Action {
	return func(s *State) {
		s.OpenScap.Profile = profile
	}
}

func ChangeFileSystemConfiguration(partitions []Partition) Action {
	return func(s *State) {
		s.FileSystem.Partitions = slices.Clone(partitions)
	}
}

func SetIsNextButtonTouched(touched bool) Action {
	return func(s *State) {
		s.FileSystem.IsNextButtonTouched = touched
	}
}

// ChangeFileSystemPartitionMode switches between automatic and manual partitioning. A real
// change resets the partitions: none for automatic, a 10 GiB root for manual.
func ChangeFileSystemPartitionMode(mode FileSystemPartitionMode) Action {
	return func(s *State) {
		if s.FileSystem.Mode == mode {
			return
		}

		s.FileSystem.Mode = mode
		switch mode {
		case FileSystemPartitionModeAutomatic:
			s.FileSystem.Partitions = []Partition{}

		case FileSystemPartitionModeManual:
			s.FileSystem.Partitions = []Partition{DefaultRootPartition()}
		}
	}
}

// ClearPartitions resets a manual layout to the default root partition.
func ClearPartitions() Action {
	return func(s *State) {
		if s.FileSystem.Mode == FileSystemPartitionModeManual {
			s.FileSystem.Partitions = []Partition{DefaultRootPartition()}
		}
	}
}

// AddPartition appends a partition. Duplicate mount points are kept; the file system step
// reports them.
func AddPartition(partition Partition) Action {
	return func(s *State) {
		s.FileSystem.Partitions = append(s.FileSystem.Partitions, partition)
	}
}

func RemovePartition(id string) Action {
	return func(s *State) {
		s.FileSystem.Partitions = removeFirst(s.FileSystem.Partitions, func(p Partition) bool {
			return p.ID == id
		})
	}
}

func RemovePartitionByMountpoint(mountpoint string) Action {
	return func(s *State) {
		s.FileSystem.Partitions = removeFirst(s.FileSystem.Partitions, func(p Partition) bool {
			return p.Mountpoint == mountpoint
		})
	}
}

// ChangePartitionOrder sorts the partitions by the position of their id in ids.
// Partitions whose id is not listed move to the front, keeping their order.
func ChangePartitionOrder(ids []string) Action {
	return func(s *State) {
		sort.SliceStable(s.FileSystem.Partitions, func(i, j int) bool {
			return slices.Index(ids, s.FileSystem.Partitions[i].ID) < slices.Index(ids, s.FileSystem.Partitions[j].ID)
		})
	}
}

func ChangePartitionMountpoint(id string, mountpoint string) Action {
	return updatePartition(id, func(p *Partition) {
		p.Mountpoint = mountpoint
	})
}

func ChangePartitionUnit(id string, unit Unit) Action {
	return updatePartition(id, func(p *Partition) {
		p.Unit = unit
	})
}

func ChangePartitionMinSize(id string, minSize string) Action {
	return updatePartition(id, func(p *Partition) {
		p.MinSize = minSize
	})
}

func ChangeCustomRepositories(repositories []blueprintapi.CustomRepository) Action {
	return func(s *State) {
		s.Repositories.CustomRepositories = slices.Clone(repositories)
	}
}

func ChangePayloadRepositories(repositories []blueprintapi.Repository) Action {
	return func(s *State) {
		s.Repositories.PayloadRepositories = slices.Clone(repositories)
	}
}

// AddRepository adds a repository to both the custom and the payload repositories. A repository
// that is already present is replaced in both lists.
func AddRepository(repo Repository) Action {
	return func(s *State) {
		removeRepository(s, repo)
		s.Repositories.CustomRepositories = append(s.Repositories.CustomRepositories, repo.ToCustomRepository())
		s.Repositories.PayloadRepositories = append(s.Repositories.PayloadRepositories, repo.ToPayloadRepository())
	}
}

// RemoveRepository removes a repository from both the custom and the payload repositories.
func RemoveRepository(repo Repository) Action {
	return func(s *State) {
		removeRepository(s, repo)
	}
}

// ImportCustomRepositories adds imported repositories that are not already present.
func ImportCustomRepositories(repositories []blueprintapi.CustomRepository) Action {
	return func(s *State) {
		for _, custom := range repositories {
			repo := RepositoryFromCustom(custom)
			if slices.ContainsFunc(s.Repositories.CustomRepositories, repo.matchesCustom) {
				continue
			}
			AddRepository(repo)(s)
		}
	}
}

func AddRecommendedRepository(repo RecommendedRepository) Action {
	return func(s *State) {
		found := slices.ContainsFunc(s.Repositories.RecommendedRepositories, func(r RecommendedRepository) bool {
			return r.URL == repo.URL
		})
		if !found {
			s.Repositories.RecommendedRepositories = append(s.Repositories.RecommendedRepositories, repo)
		}
	}
}

func RemoveRecommendedRepository(repo RecommendedRepository) Action {
	return func(s *State) {
		s.Repositories.RecommendedRepositories = slices.DeleteFunc(s.Repositories.RecommendedRepositories,
			func(r RecommendedRepository) bool {
				return r.URL == repo.URL
			})
	}
}

// AddPackage adds a package, replacing the entry of a package with the same name.
func AddPackage(pkg Package) Action {
	return func(s *State) {
		index := slices.IndexFunc(s.Packages, func(p Package) bool {
			return p.Name == pkg.Name
		})
		if index != -1 {
			s.Packages[index] = pkg
			return
		}
		s.Packages = append(s.Packages, pkg)
	}
}

func RemovePackage(name string) Action {
	return func(s *State) {
		s.Packages = removeFirst(s.Packages, func(p Package) bool {
			return p.Name == name
		})
	}
}

func ChangeBlueprintName(name string) Action {
	return func(s *State) {
		s.Details.BlueprintName = name
	}
}

func ChangeBlueprintDescription(description string) Action {
	return func(s *State) {
		s.Details.BlueprintDescription = description
	}
}

func ChangeHostname(hostname string) Action {
	return func(s *State) {
		s.Hostname = hostname
	}
}

func ChangeKernel(kernel KernelState) Action {
	return func(s *State) {
		s.Kernel = kernel
	}
}

func ChangeFIPS(enabled bool) Action {
	return func(s *State) {
		s.FIPS.Enabled = enabled
	}
}

func ChangeFirstBootScript(script string) Action {
	return func(s *State) {
		s.FirstBoot.Script = script
	}
}

// SetStepInputValidation records the check of one input. The step is a success when every
// recorded input is valid. The error text of a failed input is kept until replaced.
func SetStepInputValidation(stepID StepID, inputID string, isValid bool, errorText string) Action {
	return func(s *State) {
		setStepInputValidation(s, stepID, inputID, isValid, errorText)
	}
}

func updatePartition(id string, update func(p *Partition)) Action {
	return func(s *State) {
		index := slices.IndexFunc(s.FileSystem.Partitions, func(p Partition) bool {
			return p.ID == id
		})
		if index != -1 {
			update(&s.FileSystem.Partitions[index])
		}
	}
}

func removeRepository(s *State, repo Repository) {
	s.Repositories.CustomRepositories = slices.DeleteFunc(s.Repositories.CustomRepositories, repo.matchesCustom)
	s.Repositories.PayloadRepositories = slices.DeleteFunc(s.Repositories.PayloadRepositories, repo.matchesPayload)
}

// removeFirst drops the first item that matches. Nothing is removed when no item matches.
func removeFirst[T any](items []T, match func(T) bool) []T {
	index := slices.IndexFunc(items, match)
	if index == -1 {
		return items
	}
	return slices.Delete(items, index, index+1)
}

func validatedFromBool(isValid bool) Validated {
	if isValid {
		return ValidatedSuccess
	}
	return ValidatedError
}
